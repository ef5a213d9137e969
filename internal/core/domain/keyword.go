package domain

import (
	"errors"
	"strings"
	"time"
)

// KeywordCategory classifies a keyword. Category is part of the keyword's
// identity: the same label may exist once per category.
type KeywordCategory string

const (
	CategorySkill         KeywordCategory = "skill"
	CategoryIndustry      KeywordCategory = "industry"
	CategoryCertification KeywordCategory = "certification"
	CategoryCompany       KeywordCategory = "company"
	CategoryJobTitle      KeywordCategory = "job_title"
)

// Categories lists every valid keyword category.
var Categories = []KeywordCategory{
	CategorySkill,
	CategoryIndustry,
	CategoryCertification,
	CategoryCompany,
	CategoryJobTitle,
}

var ErrKeywordNotFound = errors.New("keyword not found")
var ErrInvalidKeyword = errors.New("keyword label is empty")
var ErrInvalidCategory = errors.New("invalid keyword category")

// IsValid reports whether c is one of the known categories.
func (c KeywordCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeKeyword produces the lookup form of a label: trimmed and lowercased.
// The stored display name keeps the casing of the first writer.
func NormalizeKeyword(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Keyword is a normalized tag attachable to contractors.
// (NameNormalized, Category) is unique; rows are created lazily on first use
// and never updated afterwards.
type Keyword struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NameNormalized string          `json:"-"`
	Category       KeywordCategory `json:"category"`
	InsertedAt     time.Time       `json:"inserted_at"`
}

// KeywordRef references a keyword either by persisted id or by a label that
// still needs resolution. Exactly one of ID or Label is set; refs with a
// label are "pending" and must be resolved before any persistence call.
type KeywordRef struct {
	ID       string
	Label    string
	Category KeywordCategory
}

// PersistedKeyword builds a ref to an already-stored keyword.
func PersistedKeyword(id string) KeywordRef {
	return KeywordRef{ID: id}
}

// PendingKeyword builds a ref to a keyword that does not exist yet.
func PendingKeyword(label string, category KeywordCategory) KeywordRef {
	return KeywordRef{Label: label, Category: category}
}

// Pending reports whether the ref still needs resolution.
func (r KeywordRef) Pending() bool {
	return r.ID == ""
}

// ContractorKeyword links a keyword to a contractor. At most one row exists
// per (ContractorID, KeywordID) pair.
type ContractorKeyword struct {
	ContractorID string `json:"contractor_id"`
	KeywordID    string `json:"keyword_id"`
	Note         string `json:"note,omitempty"`
	Position     int    `json:"position"`
}

// KeywordUsage is one row of the usage report: how many contractors carry
// the keyword.
type KeywordUsage struct {
	KeywordID       string `json:"keyword_id"`
	ContractorCount int64  `json:"contractor_count"`
}
