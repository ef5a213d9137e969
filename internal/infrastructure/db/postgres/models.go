package postgres

import (
	"time"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// Row types own the gorm mapping so the domain package stays free of
// persistence tags.

type keywordRow struct {
	ID             string    `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"not null"`
	NameNormalized string    `gorm:"not null;uniqueIndex:idx_keywords_identity"`
	Category       string    `gorm:"not null;uniqueIndex:idx_keywords_identity"`
	InsertedAt     time.Time `gorm:"not null"`
}

func (keywordRow) TableName() string { return "keywords" }

func (r keywordRow) toDomain() domain.Keyword {
	return domain.Keyword{
		ID:             r.ID,
		Name:           r.Name,
		NameNormalized: r.NameNormalized,
		Category:       domain.KeywordCategory(r.Category),
		InsertedAt:     r.InsertedAt,
	}
}

func keywordRowFrom(k *domain.Keyword) keywordRow {
	return keywordRow{
		ID:             k.ID,
		Name:           k.Name,
		NameNormalized: k.NameNormalized,
		Category:       string(k.Category),
		InsertedAt:     k.InsertedAt,
	}
}

type contractorKeywordRow struct {
	ContractorID string `gorm:"type:uuid;primaryKey"`
	KeywordID    string `gorm:"type:uuid;primaryKey;index"`
	Note         string
	Position     int `gorm:"not null"`
}

func (contractorKeywordRow) TableName() string { return "contractor_keywords" }

type contractorRow struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	FullName    string `gorm:"not null;index"`
	Email       string `gorm:"index"`
	Phone       string
	City        string
	State       string
	Country     string
	PayRate     float64
	PayCurrency string
	Available   bool `gorm:"not null;default:true"`
	Flagged     bool `gorm:"not null;default:false"`
	ResumePath  string
	ResumeURL   string
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (contractorRow) TableName() string { return "contractors" }

func (r contractorRow) toDomain() *domain.Contractor {
	return &domain.Contractor{
		ID:          r.ID,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		City:        r.City,
		State:       r.State,
		Country:     r.Country,
		PayRate:     r.PayRate,
		PayCurrency: r.PayCurrency,
		Available:   r.Available,
		Flagged:     r.Flagged,
		ResumePath:  r.ResumePath,
		ResumeURL:   r.ResumeURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func contractorRowFrom(c *domain.Contractor) contractorRow {
	return contractorRow{
		ID:          c.ID,
		FullName:    c.FullName,
		Email:       c.Email,
		Phone:       c.Phone,
		City:        c.City,
		State:       c.State,
		Country:     c.Country,
		PayRate:     c.PayRate,
		PayCurrency: c.PayCurrency,
		Available:   c.Available,
		Flagged:     c.Flagged,
		ResumePath:  c.ResumePath,
		ResumeURL:   c.ResumeURL,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type historyRow struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	ContractorID string    `gorm:"type:uuid;not null;index"`
	Kind         string    `gorm:"not null"`
	Note         string    `gorm:"type:text"`
	ActorEmail   string
	CreatedAt    time.Time `gorm:"not null"`
}

func (historyRow) TableName() string { return "contractor_histories" }

func (r historyRow) toDomain() domain.ContractorHistory {
	return domain.ContractorHistory{
		ID:           r.ID,
		ContractorID: r.ContractorID,
		Kind:         r.Kind,
		Note:         r.Note,
		ActorEmail:   r.ActorEmail,
		CreatedAt:    r.CreatedAt,
	}
}

type taskRow struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ContractorID string `gorm:"type:uuid;not null;index"`
	Title        string `gorm:"not null"`
	Note         string `gorm:"type:text"`
	DueAt        *time.Time
	Done         bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (taskRow) TableName() string { return "contractor_tasks" }

func (r taskRow) toDomain() domain.ContractorTask {
	return domain.ContractorTask{
		ID:           r.ID,
		ContractorID: r.ContractorID,
		Title:        r.Title,
		Note:         r.Note,
		DueAt:        r.DueAt,
		Done:         r.Done,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func taskRowFrom(t *domain.ContractorTask) taskRow {
	return taskRow{
		ID:           t.ID,
		ContractorID: t.ContractorID,
		Title:        t.Title,
		Note:         t.Note,
		DueAt:        t.DueAt,
		Done:         t.Done,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type employeeRow struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex"`
	FullName     string
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (employeeRow) TableName() string { return "internal_employees" }

func (r employeeRow) toDomain() *domain.InternalEmployee {
	return &domain.InternalEmployee{
		ID:           r.ID,
		Email:        r.Email,
		FullName:     r.FullName,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
