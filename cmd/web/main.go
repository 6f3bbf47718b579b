package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-jobseeker-backend/config"
	"go-jobseeker-backend/internal/delivery/web"
	"go-jobseeker-backend/internal/repository/postgres"
	"go-jobseeker-backend/internal/usecase"
	"go-jobseeker-backend/pkg/auth"
	"go-jobseeker-backend/pkg/database"
	"go-jobseeker-backend/pkg/logger"
)

// The web surface defaults to the fixed development identity unless
// STRICT_AUTH is set, mirroring how the site API runs locally.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Unless explicitly configured, this surface runs with the fixed
	// development identity (the api surface defaults to strict)
	if _, set := os.LookupEnv("STRICT_AUTH"); !set {
		cfg.StrictAuth = false
	}

	logger.Init()
	logger.Log.Info("Starting jobseeker web surface", "port", cfg.WebPort, "strict_auth", cfg.StrictAuth)

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, cfg.DBMaxConns)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	noteRepo := postgres.NewNoteRepository(dbPool)
	jobseekerRepo := postgres.NewJobseekerRepository(dbPool)

	app := web.NewApp(web.AppDeps{
		NoteUC:      usecase.NewNoteUsecase(noteRepo, cfg.MinNoteLength),
		JobseekerUC: usecase.NewJobseekerUsecase(jobseekerRepo),
		Resolver:    auth.NewResolver(cfg),
		Config:      cfg,
	})

	go func() {
		if err := app.Listen(":" + cfg.WebPort); err != nil {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down web surface...")

	if err := app.Shutdown(); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
