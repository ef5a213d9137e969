package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/api/metrics"
	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

const (
	defaultPageLimit = 25
	maxPageLimit     = 100
)

type ContractorService struct {
	repo    ports.ContractorRepository
	history ports.HistoryRecorder
	logger  zerolog.Logger
}

func NewContractorService(repo ports.ContractorRepository, history ports.HistoryRecorder, logger zerolog.Logger) *ContractorService {
	return &ContractorService{repo: repo, history: history, logger: logger}
}

// CreateContractor creates a new contractor record and queues a "created"
// entry on its timeline.
func (s *ContractorService) CreateContractor(ctx context.Context, input ports.ContractorInput, actorEmail string) (*domain.Contractor, error) {
	now := time.Now().UTC()
	contractor := &domain.Contractor{
		ID:          uuid.NewString(),
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		PayRate:     input.PayRate,
		PayCurrency: input.PayCurrency,
		Available:   input.Available,
		Flagged:     input.Flagged,
		ResumePath:  input.ResumePath,
		ResumeURL:   input.ResumeURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, contractor); err != nil {
		s.logger.Error().Err(err).Msg("failed to create contractor")
		return nil, err
	}

	metrics.ContractorsCreatedTotal.Inc()
	s.recordHistory(ctx, contractor.ID, domain.HistoryCreated, "", actorEmail)

	s.logger.Info().Str("contractor_id", contractor.ID).Str("full_name", contractor.FullName).Msg("contractor created")
	return contractor, nil
}

func (s *ContractorService) GetContractor(ctx context.Context, id string) (*domain.Contractor, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateContractor replaces the contractor's editable fields and queues a
// "profile_edited" timeline entry.
func (s *ContractorService) UpdateContractor(ctx context.Context, id string, input ports.ContractorInput, actorEmail string) (*domain.Contractor, error) {
	contractor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contractor.FullName = input.FullName
	contractor.Email = input.Email
	contractor.Phone = input.Phone
	contractor.City = input.City
	contractor.State = input.State
	contractor.Country = input.Country
	contractor.PayRate = input.PayRate
	contractor.PayCurrency = input.PayCurrency
	contractor.Available = input.Available
	contractor.Flagged = input.Flagged
	if input.ResumePath != "" {
		contractor.ResumePath = input.ResumePath
		contractor.ResumeURL = input.ResumeURL
	}
	contractor.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contractor); err != nil {
		s.logger.Error().Err(err).Str("contractor_id", id).Msg("failed to update contractor")
		return nil, err
	}

	s.recordHistory(ctx, id, domain.HistoryProfileEdited, "", actorEmail)
	return contractor, nil
}

func (s *ContractorService) DeleteContractor(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListContractors returns a filtered, paginated page of contractors.
func (s *ContractorService) ListContractors(ctx context.Context, input ports.ListContractorsInput) (*ports.ListContractorsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListContractorsFilter{
		Search:     input.Search,
		KeywordIDs: input.KeywordIDs,
		Available:  input.Available,
		Flagged:    input.Flagged,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list contractors")
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListContractorsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// recordHistory enqueues a timeline entry; failures are logged, never fatal
// to the calling operation.
func (s *ContractorService) recordHistory(ctx context.Context, contractorID, kind, note, actorEmail string) {
	err := s.history.Record(ctx, ports.HistoryEntryInput{
		ContractorID: contractorID,
		Kind:         kind,
		Note:         note,
		ActorEmail:   actorEmail,
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("contractor_id", contractorID).Str("kind", kind).Msg("history record failed")
	}
}
