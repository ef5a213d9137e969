// Command api runs the recruiting HTTP API.
//
// @title           Recruiting System API
// @version         1.0
// @description     Contractor tracking, keyword tagging, resume parsing, and profile search.
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crewbase/recruiting-system/internal/api"
	"github.com/crewbase/recruiting-system/internal/core/ports"
	"github.com/crewbase/recruiting-system/internal/core/service"
	"github.com/crewbase/recruiting-system/internal/infrastructure/db/postgres"
	redisdb "github.com/crewbase/recruiting-system/internal/infrastructure/db/redis"
	"github.com/crewbase/recruiting-system/internal/infrastructure/llm"
	"github.com/crewbase/recruiting-system/internal/infrastructure/queue"
	"github.com/crewbase/recruiting-system/internal/infrastructure/search"
	"github.com/crewbase/recruiting-system/internal/infrastructure/storage"
	"github.com/crewbase/recruiting-system/internal/pkg/config"
	"github.com/crewbase/recruiting-system/internal/resume"
	"github.com/crewbase/recruiting-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required: auth tokens and signed resume URLs cannot be verified without it")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	db, err := postgres.Connect(postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	store, err := storage.NewLocalStore(cfg.Storage.Root, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("object store init failed")
	}

	var extractor ports.ResumeExtractor
	if llmExtractor, err := llm.NewExtractor(ctx, cfg.LLM.APIKey, cfg.LLM.Model, log); err != nil {
		log.Warn().Err(err).Msg("resume extraction disabled")
		extractor = llm.Disabled{}
	} else {
		extractor = llmExtractor
	}

	// --- Repositories ---
	keywordRepo := postgres.NewKeywordRepository(db)
	associationRepo := postgres.NewAssociationRepository(db)
	contractorRepo := postgres.NewContractorRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	taskRepo := postgres.NewTaskRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)

	usageCache := redisdb.NewUsageCache(rdb)

	// --- Services ---
	historyService := service.NewHistoryService(historyRepo, log)
	dispatcher := queue.NewDispatcher(0, historyService, log)
	dispatcher.Start(ctx)

	keywordService := service.NewKeywordService(keywordRepo, usageCache, log)
	associationService := service.NewAssociationService(associationRepo, contractorRepo, keywordService, usageCache, dispatcher, log)
	contractorService := service.NewContractorService(contractorRepo, dispatcher, log)
	taskService := service.NewTaskService(taskRepo, contractorRepo, log)
	authService := service.NewAuthService(employeeRepo, cfg.JWTSecret, 24*time.Hour)
	resumeService := service.NewResumeService(store, storage.NewJWTSigner(cfg.JWTSecret), resume.NewExtractor(), extractor, log)
	searchService := service.NewSearchService(search.NewGoogleCSESearcher(cfg.Search.APIKey, cfg.Search.CSEID, log), log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Auth:         authService,
		Contractors:  contractorService,
		Keywords:     keywordService,
		Associations: associationService,
		History:      historyService,
		Tasks:        taskService,
		Resumes:      resumeService,
		Search:       searchService,
		DB:           db,
		Redis:        rdb,
		JWTSecret:    cfg.JWTSecret,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
