package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/api"
	appmiddleware "github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/api/middleware"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/config"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/generation"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/platform/gemini"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/platform/postgres"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/service"
	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/store"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// application holds all the shared application dependencies so they are
// constructed once during process initialization and passed by reference,
// never reached for as ambient globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore store.TaskStore
	generator generation.TitleGenerator

	taskService service.TaskService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies (configuration, logger,
// database handle) that must be established before wiring.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(db)

	var err error
	app.generator, err = gemini.NewGenerator(
		ctx,
		logger.With("component", "title_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize title generator: %w", err)
	}
	logger.Info("Title generator initialized", "model", cfg.LLM.ModelName)

	app.taskService, err = service.NewTaskService(app.taskStore, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupRouter builds the HTTP router with the application dependencies.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.TraceMiddleware)

	// Cross-origin requests are permitted unconditionally.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	taskHandler := api.NewTaskHandler(app.taskService)

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", taskHandler.CreateTask)
		r.Get("/", taskHandler.ListTasks)
	})

	// Update and delete are not implemented; unmatched routes fall
	// through to chi's default 404.

	return r
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
