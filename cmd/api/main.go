package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobseeker-backend/config"
	_ "go-jobseeker-backend/docs" // Important for Swagger
	v1 "go-jobseeker-backend/internal/delivery/http/v1"
	"go-jobseeker-backend/internal/repository/postgres"
	"go-jobseeker-backend/internal/usecase"
	"go-jobseeker-backend/pkg/auth"
	"go-jobseeker-backend/pkg/database"
	"go-jobseeker-backend/pkg/logger"
	"go-jobseeker-backend/pkg/redis"
)

// @title           Jobseeker Notes Backend API
// @version         1.0
// @description     Jobseeker profile and note management API.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting jobseeker backend", "port", cfg.Port, "strict_auth", cfg.StrictAuth)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, cfg.DBMaxConns)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiter falls back without it)
	redis.Init(cfg.RedisURL, cfg.RedisPassword)
	defer redis.Close()

	// 5. Setup Repositories
	noteRepo := postgres.NewNoteRepository(dbPool)
	jobseekerRepo := postgres.NewJobseekerRepository(dbPool)

	// 6. Setup UseCases
	noteUC := usecase.NewNoteUsecase(noteRepo, cfg.MinNoteLength)
	jobseekerUC := usecase.NewJobseekerUsecase(jobseekerRepo)

	// 7. Setup Identity Resolver
	resolver := auth.NewResolver(cfg)
	if !cfg.StrictAuth {
		logger.Log.Warn("STRICT_AUTH disabled - all requests run as the mock identity")
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		NoteUC:      noteUC,
		JobseekerUC: jobseekerUC,
		Resolver:    resolver,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
