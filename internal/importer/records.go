package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default handoff file names. The contractor import writes the first; the
// keyword import reads it and writes the second.
const (
	ContractorMapFile = "imported_contractors.json"
	KeywordMapFile    = "keyword_map.json"
)

// SourceRecord is one contractor row of the source export. The per-category
// keyword fields are free text with mixed delimiters.
type SourceRecord struct {
	Key         string  `json:"key"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	PayRate     float64 `json:"pay_rate"`
	PayCurrency string  `json:"pay_currency"`

	Skills         string `json:"skills"`
	Industries     string `json:"industries"`
	Certifications string `json:"certifications"`
	Companies      string `json:"companies"`
	JobTitles      string `json:"job_titles"`
}

// BatchError records one failed row without stopping the run.
type BatchError struct {
	Batch int    `json:"batch"`
	Key   string `json:"key"`
	Err   string `json:"error"`
}

// ReadRecords loads the source export.
func ReadRecords(path string) ([]SourceRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	var records []SourceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode source file: %w", err)
	}
	return records, nil
}

// ReadContractorMap loads the contractor handoff written by a previous
// contractor-import run.
func ReadContractorMap(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contractor map: %w", err)
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode contractor map: %w", err)
	}
	return m, nil
}

// WriteJSON writes a handoff file with stable, readable formatting.
func WriteJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
