package domain

import (
	"errors"
	"time"
)

var ErrContractorNotFound = errors.New("contractor not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// Contractor is the core aggregate: a person the recruiting team tracks.
type Contractor struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	PayRate     float64   `json:"pay_rate"`
	PayCurrency string    `json:"pay_currency"`
	Available   bool      `json:"available"`
	Flagged     bool      `json:"flagged"`
	ResumePath  string    `json:"resume_path,omitempty"`
	ResumeURL   string    `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// History entry kinds. Kept open-ended: the UI records free-form notes too.
const (
	HistoryCreated       = "created"
	HistoryProfileEdited = "profile_edited"
	HistoryKeywordsSet   = "keywords_set"
	HistoryResumeParsed  = "resume_parsed"
	HistoryNote          = "note"
)

// ContractorHistory records one event on a contractor's timeline.
type ContractorHistory struct {
	ID           string    `json:"id"`
	ContractorID string    `json:"contractor_id"`
	Kind         string    `json:"kind"`
	Note         string    `json:"note,omitempty"`
	ActorEmail   string    `json:"actor_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ContractorTask is a follow-up item attached to a contractor.
type ContractorTask struct {
	ID           string     `json:"id"`
	ContractorID string     `json:"contractor_id"`
	Title        string     `json:"title"`
	Note         string     `json:"note,omitempty"`
	DueAt        *time.Time `json:"due_at,omitempty"`
	Done         bool       `json:"done"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
