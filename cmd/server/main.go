// Command server runs the investment advisory HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/wealthcraft/advisor/internal/clients/products"
	"github.com/wealthcraft/advisor/internal/config"
	"github.com/wealthcraft/advisor/internal/database"
	"github.com/wealthcraft/advisor/internal/modules/allocation"
	allocationhandlers "github.com/wealthcraft/advisor/internal/modules/allocation/handlers"
	"github.com/wealthcraft/advisor/internal/modules/catalog"
	"github.com/wealthcraft/advisor/internal/modules/proposal"
	proposalhandlers "github.com/wealthcraft/advisor/internal/modules/proposal/handlers"
	"github.com/wealthcraft/advisor/internal/modules/recommendation"
	"github.com/wealthcraft/advisor/internal/modules/risk"
	riskhandlers "github.com/wealthcraft/advisor/internal/modules/risk/handlers"
	"github.com/wealthcraft/advisor/internal/reliability"
	"github.com/wealthcraft/advisor/internal/scheduler"
	"github.com/wealthcraft/advisor/internal/server"
	"github.com/wealthcraft/advisor/pkg/logger"
)

// refreshLookbackMonths is the performance window requested from the product
// source when warming the candidate cache.
const refreshLookbackMonths = 36

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	log.Info().Str("data_dir", cfg.DataDir).Msg("Starting advisor service")

	// Databases: durable catalog, ephemeral candidate cache
	catalogDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "catalog.db"),
		Profile: database.ProfileStandard,
		Name:    "catalog",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open catalog database")
	}
	defer catalogDB.Close()

	cacheDB, err := database.New(database.Config{
		Path:    filepath.Join(cfg.DataDir, "cache.db"),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	catalogRepo := catalog.NewRepository(catalogDB.Conn(), log)
	if err := catalogRepo.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize product catalog")
	}

	candidateCache := catalog.NewCandidateCache(cacheDB.Conn(), catalog.DefaultCandidateTTL, log)
	if err := candidateCache.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize candidate cache")
	}

	// External product source; empty URL keeps the service on the static
	// catalog only.
	productClient := products.NewClient(
		cfg.ProductAPIURL,
		cfg.ProductTimeout,
		products.RetryPolicy{Retries: cfg.ProductRetries, Delay: cfg.ProductRetryDelay},
		log,
	)

	// Advisory pipeline
	scorer := risk.NewScorer()
	engine := allocation.NewEngine(allocation.DefaultSubBucketPolicy(), log)
	assembler := recommendation.NewAssembler(productClient, candidateCache, catalogRepo, log)
	proposalService := proposal.NewService(scorer, engine, assembler, log)

	// Background jobs
	sched := scheduler.New(log)
	refreshJob := catalog.NewRefreshJob(productClient, candidateCache, refreshLookbackMonths, log)
	if cfg.ProductAPIURL != "" {
		if err := sched.AddJob(cfg.CatalogRefreshCron, refreshJob); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule catalog refresh")
		}
	}

	if cfg.Backup.Enabled {
		s3Client, err := reliability.NewS3Client(context.Background(), reliability.S3Config{
			Bucket:          cfg.Backup.Bucket,
			Endpoint:        cfg.Backup.Endpoint,
			AccessKeyID:     cfg.Backup.AccessKeyID,
			SecretAccessKey: cfg.Backup.SecretAccessKey,
		}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create backup store client")
		}

		backupService := reliability.NewBackupService(
			s3Client,
			[]*database.DB{catalogDB, cacheDB},
			cfg.DataDir,
			log,
		)
		if err := sched.AddJob(cfg.Backup.Cron, reliability.NewBackupJob(backupService, log)); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule catalog backup")
		}
	}

	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Log:               log,
		Config:            cfg,
		CatalogDB:         catalogDB,
		CacheDB:           cacheDB,
		Scheduler:         sched,
		RiskHandler:       riskhandlers.NewHandler(scorer, log),
		AllocationHandler: allocationhandlers.NewHandler(engine, log),
		ProposalHandler:   proposalhandlers.NewHandler(proposalService, log),
	})

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Advisor service stopped")
}
