package ports

import (
	"context"
	"time"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// ContractorInput carries the editable contractor fields, shared by create
// and update.
type ContractorInput struct {
	FullName    string
	Email       string
	Phone       string
	City        string
	State       string
	Country     string
	PayRate     float64
	PayCurrency string
	Available   bool
	Flagged     bool
	ResumePath  string
	ResumeURL   string
}

// ListContractorsInput carries all parameters for the list endpoint.
type ListContractorsInput struct {
	Search     string
	KeywordIDs []string
	Available  *bool
	Flagged    *bool
	Page       int
	Limit      int
}

// ListContractorsResult is returned by ListContractors.
type ListContractorsResult struct {
	Items      []*domain.Contractor
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ContractorService defines use-case operations for contractor records.
// ActorEmail identifies the staff member performing the change and is
// recorded on the contractor's history timeline.
type ContractorService interface {
	CreateContractor(ctx context.Context, input ContractorInput, actorEmail string) (*domain.Contractor, error)
	GetContractor(ctx context.Context, id string) (*domain.Contractor, error)
	UpdateContractor(ctx context.Context, id string, input ContractorInput, actorEmail string) (*domain.Contractor, error)
	DeleteContractor(ctx context.Context, id string) error
	ListContractors(ctx context.Context, input ListContractorsInput) (*ListContractorsResult, error)
}

// HistoryEntryInput is the DTO handed to the history dispatcher.
type HistoryEntryInput struct {
	ContractorID string
	Kind         string
	Note         string
	ActorEmail   string
	OccurredAt   time.Time
}

// HistoryRecorder consumes history entries, typically behind an async
// dispatcher so request paths never block on timeline writes.
type HistoryRecorder interface {
	Record(ctx context.Context, entry HistoryEntryInput) error
}

// HistoryService reads a contractor's timeline.
type HistoryService interface {
	ListHistory(ctx context.Context, contractorID string) ([]domain.ContractorHistory, error)
}

// TaskInput carries the editable task fields.
type TaskInput struct {
	Title string
	Note  string
	DueAt *time.Time
}

// TaskService manages contractor follow-up tasks.
type TaskService interface {
	CreateTask(ctx context.Context, contractorID string, input TaskInput) (*domain.ContractorTask, error)
	CompleteTask(ctx context.Context, id string) (*domain.ContractorTask, error)
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, contractorID string) ([]domain.ContractorTask, error)
}
