package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"alugo-backend/internal/config"
	"alugo-backend/internal/jobs"
	"alugo-backend/internal/logger"
	"alugo-backend/internal/repository/postgres"
	"alugo-backend/internal/scheduler"
	"alugo-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run all jobs once and exit instead of scheduling")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Alugo cron runner...", "run_once", *runOnce)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ItemRepository,
		store.ItemTypeRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		time.Now,
	)

	jobRunner := jobs.NewJobRunner(store, &jobs.Services{
		Rental: rentalSvc,
		Email:  emailSvc,
	}, cfg)

	if *runOnce {
		jobRunner.RunAll()
		logger.Info("All jobs finished, exiting")
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Block until interrupted
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("Received shutdown signal", "signal", sig.String())

	sched.Stop()
}
