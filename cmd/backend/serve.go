package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hairizuanbinnoorazman/qa-dashboard/aigen"
	"github.com/hairizuanbinnoorazman/qa-dashboard/cmd/backend/handlers"
	"github.com/hairizuanbinnoorazman/qa-dashboard/database"
	"github.com/hairizuanbinnoorazman/qa-dashboard/environment"
	"github.com/hairizuanbinnoorazman/qa-dashboard/fixtures"
	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/reconcile"
	"github.com/spf13/cobra"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServer,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogrusLogger(cfg.Log.Level)
	log.Info(ctx, "starting server", map[string]interface{}{
		"version": Version,
		"commit":  Commit,
		"date":    BuildDate,
	})

	// Connect to the environments database
	db, err := database.Connect(database.Config{
		Driver:       cfg.Database.Driver,
		Path:         cfg.Database.Path,
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info(ctx, "database connected", map[string]interface{}{
		"driver": cfg.Database.Driver,
	})

	// Initialize state
	engine := reconcile.NewEngine(log)
	environmentStore := environment.NewSQLStore(db, log)

	if cfg.Fixtures.Enabled {
		if err := fixtures.SeedEngine(ctx, engine); err != nil {
			return fmt.Errorf("failed to seed catalog fixtures: %w", err)
		}
		if err := fixtures.SeedEnvironments(ctx, environmentStore); err != nil {
			return fmt.Errorf("failed to seed environment fixtures: %w", err)
		}
		log.Info(ctx, "fixtures seeded", nil)
	}

	// The generator is constructed lazily-enough here; a missing AWS
	// config only surfaces when a generation endpoint is hit.
	var generator aigen.Generator
	bedrock, err := aigen.NewBedrockGenerator(cfg.Bedrock.Region, cfg.Bedrock.Model, cfg.Bedrock.MaxTokens)
	if err != nil {
		log.Warn(ctx, "text generation unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		generator = bedrock
	}

	// Setup router
	router := mux.NewRouter()

	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	projectHandler := handlers.NewProjectHandler(engine, log)
	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects", projectHandler.Create).Methods("POST")
	api.HandleFunc("/projects/{name}", projectHandler.Deactivate).Methods("DELETE")

	testCaseHandler := handlers.NewTestCaseHandler(engine, log)
	api.HandleFunc("/projects/{name}/testcases", testCaseHandler.ListByProject).Methods("GET")
	api.HandleFunc("/projects/{name}/testcases", testCaseHandler.Create).Methods("POST")
	api.HandleFunc("/testcases/{id}", testCaseHandler.Update).Methods("PUT")
	api.HandleFunc("/testcases/{id}", testCaseHandler.Deactivate).Methods("DELETE")

	runHandler := handlers.NewTestRunHandler(engine, log)
	api.HandleFunc("/runs", runHandler.List).Methods("GET")
	api.HandleFunc("/runs/{id}", runHandler.GetByID).Methods("GET")
	api.HandleFunc("/runs/{id}", runHandler.Delete).Methods("DELETE")
	api.HandleFunc("/projects/{name}/batches", runHandler.CreateBatch).Methods("POST")

	executionHandler := handlers.NewExecutionHandler(engine, log)
	api.HandleFunc("/executions", executionHandler.List).Methods("GET")
	api.HandleFunc("/executions/{id}/pass", executionHandler.Pass).Methods("POST")
	api.HandleFunc("/executions/{id}/fail", executionHandler.Fail).Methods("POST")

	dashboardHandler := handlers.NewDashboardHandler(engine, log)
	api.HandleFunc("/dashboard/summary", dashboardHandler.Summary).Methods("GET")

	environmentHandler := handlers.NewEnvironmentHandler(environmentStore, log)
	api.HandleFunc("/environments", environmentHandler.List).Methods("GET")
	api.HandleFunc("/environments", environmentHandler.Create).Methods("POST")
	api.HandleFunc("/environments/{name}", environmentHandler.Update).Methods("PUT")
	api.HandleFunc("/environments/{name}", environmentHandler.Delete).Methods("DELETE")

	generateHandler := handlers.NewGenerateHandler(generator, engine, log)
	api.HandleFunc("/generate/steps", generateHandler.GenerateSteps).Methods("POST")
	api.HandleFunc("/generate/steps/status", generateHandler.GenerateStepsStatus).Methods("GET")
	api.HandleFunc("/runs/{id}/summarize", generateHandler.SummarizeRun).Methods("POST")
	api.HandleFunc("/runs/{id}/summarize/status", generateHandler.SummarizeRunStatus).Methods("GET")

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info(ctx, "server listening", map[string]interface{}{
			"address": addr,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info(ctx, "server stopped", nil)
	return nil
}
