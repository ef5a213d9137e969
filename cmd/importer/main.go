// Command importer bulk-loads contractors and their keywords from a source
// export. Run the contractors step first; it writes the contractor map the
// keywords step needs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/service"
	"github.com/crewbase/recruiting-system/internal/importer"
	"github.com/crewbase/recruiting-system/internal/infrastructure/db/postgres"
	"github.com/crewbase/recruiting-system/internal/pkg/config"
	"github.com/crewbase/recruiting-system/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "importer",
		Usage: "bulk-import contractors and keywords from a source export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "path to the source export (JSON array of records)",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "batch",
				Usage: "records per batch",
				Value: 50,
			},
			&cli.BoolFlag{
				Name:  "test",
				Usage: "import only the first 5 records as a dry run",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "contractors",
				Usage:  "import contractor records and write " + importer.ContractorMapFile,
				Action: runContractors,
			},
			{
				Name:  "keywords",
				Usage: "split, resolve, and link keywords; writes " + importer.KeywordMapFile,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "contractor-map",
						Usage: "path to the contractor map from a previous run",
						Value: importer.ContractorMapFile,
					},
				},
				Action: runKeywords,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// nopUsageCache satisfies the usage-cache dependency without Redis; import
// runs invalidate nothing and the API repopulates the cache on first read.
type nopUsageCache struct{}

func (nopUsageCache) Get(context.Context) ([]domain.KeywordUsage, bool, error) { return nil, false, nil }
func (nopUsageCache) Set(context.Context, []domain.KeywordUsage) error         { return nil }
func (nopUsageCache) Invalidate(context.Context) error                         { return nil }

func newImporter() (*importer.Importer, error) {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := postgres.Connect(postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	keywordRepo := postgres.NewKeywordRepository(db)
	associationRepo := postgres.NewAssociationRepository(db)
	contractorRepo := postgres.NewContractorRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)

	historyService := service.NewHistoryService(historyRepo, log)
	keywordService := service.NewKeywordService(keywordRepo, nopUsageCache{}, log)
	associationService := service.NewAssociationService(associationRepo, contractorRepo, keywordService, nopUsageCache{}, historyService, log)
	contractorService := service.NewContractorService(contractorRepo, historyService, log)

	return importer.New(contractorService, keywordService, associationService, log), nil
}

func options(c *cli.Context) importer.Options {
	return importer.Options{
		BatchSize: c.Int("batch"),
		Test:      c.Bool("test"),
	}
}

func runContractors(c *cli.Context) error {
	im, err := newImporter()
	if err != nil {
		return err
	}

	records, err := importer.ReadRecords(c.String("input"))
	if err != nil {
		return err
	}

	result, err := im.ImportContractors(c.Context, records, options(c))
	if err != nil {
		return err
	}

	if err := importer.WriteJSON(importer.ContractorMapFile, result.Imported); err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		if err := importer.WriteJSON("contractor_import_errors.json", result.Errors); err != nil {
			return err
		}
	}

	fmt.Printf("imported %d contractors (%d errors), map written to %s\n",
		len(result.Imported), len(result.Errors), importer.ContractorMapFile)
	return nil
}

func runKeywords(c *cli.Context) error {
	im, err := newImporter()
	if err != nil {
		return err
	}

	records, err := importer.ReadRecords(c.String("input"))
	if err != nil {
		return err
	}
	contractorMap, err := importer.ReadContractorMap(c.String("contractor-map"))
	if err != nil {
		return err
	}

	result, err := im.ImportKeywords(c.Context, records, contractorMap, options(c))
	if err != nil {
		return err
	}

	if err := importer.WriteJSON(importer.KeywordMapFile, result.Resolved); err != nil {
		return err
	}
	if len(result.Errors) > 0 {
		if err := importer.WriteJSON("keyword_import_errors.json", result.Errors); err != nil {
			return err
		}
	}

	fmt.Printf("linked %d contractors, %d keywords resolved (%d errors), map written to %s\n",
		result.Linked, len(result.Resolved), len(result.Errors), importer.KeywordMapFile)
	return nil
}
