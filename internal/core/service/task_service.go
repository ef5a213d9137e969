package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

// TaskService manages follow-up tasks attached to contractors.
type TaskService struct {
	tasks       ports.TaskRepository
	contractors ports.ContractorRepository
	logger      zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, contractors ports.ContractorRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, contractors: contractors, logger: logger}
}

func (s *TaskService) CreateTask(ctx context.Context, contractorID string, input ports.TaskInput) (*domain.ContractorTask, error) {
	if _, err := s.contractors.FindByID(ctx, contractorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.ContractorTask{
		ID:           uuid.NewString(),
		ContractorID: contractorID,
		Title:        input.Title,
		Note:         input.Note,
		DueAt:        input.DueAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("contractor_id", contractorID).Msg("failed to create task")
		return nil, err
	}
	return task, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, id string) (*domain.ContractorTask, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Done {
		return task, nil
	}

	task.Done = true
	task.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, contractorID string) ([]domain.ContractorTask, error) {
	if _, err := s.contractors.FindByID(ctx, contractorID); err != nil {
		return nil, err
	}
	return s.tasks.ListByContractor(ctx, contractorID)
}
