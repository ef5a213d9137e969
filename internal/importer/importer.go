// Package importer implements the offline bulk-import pipeline: source
// export → contractor rows → keyword splitting → resolution → associations.
package importer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
)

const (
	defaultBatchSize = 50
	testSampleSize   = 5
)

// Options tunes one import run.
type Options struct {
	// BatchSize is the number of records processed per batch. Batches run
	// sequentially; a failed batch is recorded and later batches continue.
	BatchSize int
	// Test limits the run to a small fixed sample so a dry run exercises the
	// real code paths with minimal data.
	Test bool
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return defaultBatchSize
	}
	return o.BatchSize
}

// Importer drives bulk imports through the same services the API uses, so
// resolution and association invariants hold for imported data too.
type Importer struct {
	contractors  ports.ContractorService
	keywords     ports.KeywordService
	associations ports.AssociationService
	logger       zerolog.Logger
}

func New(
	contractors ports.ContractorService,
	keywords ports.KeywordService,
	associations ports.AssociationService,
	logger zerolog.Logger,
) *Importer {
	return &Importer{
		contractors:  contractors,
		keywords:     keywords,
		associations: associations,
		logger:       logger,
	}
}

// ContractorResult summarises one contractor-import run.
type ContractorResult struct {
	// Imported maps the source record key to the new contractor id. This is
	// the content of imported_contractors.json.
	Imported map[string]string
	Errors   []BatchError
}

// ImportContractors inserts contractor rows batch by batch. Row failures
// are recorded and do not stop the run.
func (im *Importer) ImportContractors(ctx context.Context, records []SourceRecord, opts Options) (*ContractorResult, error) {
	if opts.Test && len(records) > testSampleSize {
		records = records[:testSampleSize]
	}

	result := &ContractorResult{Imported: make(map[string]string, len(records))}
	size := opts.batchSize()

	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batch := start/size + 1

		for _, record := range records[start:end] {
			if record.Key == "" || record.FullName == "" {
				result.Errors = append(result.Errors, BatchError{Batch: batch, Key: record.Key, Err: "missing key or full_name"})
				continue
			}

			contractor, err := im.contractors.CreateContractor(ctx, ports.ContractorInput{
				FullName:    record.FullName,
				Email:       record.Email,
				Phone:       record.Phone,
				City:        record.City,
				State:       record.State,
				Country:     record.Country,
				PayRate:     record.PayRate,
				PayCurrency: record.PayCurrency,
				Available:   true,
			}, "bulk-import")
			if err != nil {
				result.Errors = append(result.Errors, BatchError{Batch: batch, Key: record.Key, Err: err.Error()})
				continue
			}
			result.Imported[record.Key] = contractor.ID
		}

		im.logger.Info().Int("batch", batch).Int("imported", len(result.Imported)).Int("errors", len(result.Errors)).Msg("contractor batch done")
	}

	return result, nil
}

// KeywordResult summarises one keyword-import run.
type KeywordResult struct {
	// Resolved maps "category/normalized label" to the keyword id. This is
	// the content of keyword_map.json.
	Resolved map[string]string
	Linked   int
	Errors   []BatchError
}

// ImportKeywords splits each record's free-text category fields, resolves
// the labels, and replaces the contractor's keyword set. contractorMap is
// the handoff produced by ImportContractors.
func (im *Importer) ImportKeywords(ctx context.Context, records []SourceRecord, contractorMap map[string]string, opts Options) (*KeywordResult, error) {
	if opts.Test && len(records) > testSampleSize {
		records = records[:testSampleSize]
	}

	result := &KeywordResult{Resolved: make(map[string]string)}
	size := opts.batchSize()

	for start := 0; start < len(records); start += size {
		end := start + size
		if end > len(records) {
			end = len(records)
		}
		batch := start/size + 1

		for _, record := range records[start:end] {
			contractorID, ok := contractorMap[record.Key]
			if !ok {
				result.Errors = append(result.Errors, BatchError{Batch: batch, Key: record.Key, Err: "no imported contractor for key"})
				continue
			}

			refs, err := im.resolveRecord(ctx, record, result.Resolved)
			if err != nil {
				result.Errors = append(result.Errors, BatchError{Batch: batch, Key: record.Key, Err: err.Error()})
				continue
			}

			if err := im.associations.ReplaceKeywords(ctx, contractorID, refs); err != nil {
				result.Errors = append(result.Errors, BatchError{Batch: batch, Key: record.Key, Err: err.Error()})
				continue
			}
			result.Linked++
		}

		im.logger.Info().Int("batch", batch).Int("linked", result.Linked).Int("errors", len(result.Errors)).Msg("keyword batch done")
	}

	return result, nil
}

// resolveRecord splits and resolves every category field of one record,
// recording resolutions in the shared keyword map.
func (im *Importer) resolveRecord(ctx context.Context, record SourceRecord, resolved map[string]string) (ports.CategorizedKeywordRefs, error) {
	fields := map[domain.KeywordCategory]string{
		domain.CategorySkill:         record.Skills,
		domain.CategoryIndustry:      record.Industries,
		domain.CategoryCertification: record.Certifications,
		domain.CategoryCompany:       record.Companies,
		domain.CategoryJobTitle:      record.JobTitles,
	}

	refs := make(ports.CategorizedKeywordRefs)
	for category, text := range fields {
		labels := DedupeLabels(SplitKeywordField(text))
		for _, label := range labels {
			keyword, err := im.keywords.Resolve(ctx, label, category)
			if err != nil {
				return nil, fmt.Errorf("resolve %q (%s): %w", label, category, err)
			}
			resolved[string(category)+"/"+keyword.NameNormalized] = keyword.ID
			refs[category] = append(refs[category], domain.PersistedKeyword(keyword.ID))
		}
	}
	return refs, nil
}
