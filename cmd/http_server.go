package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/hr-dashboard/api"
	"github.com/frahmantamala/hr-dashboard/db"
	"github.com/frahmantamala/hr-dashboard/internal"
	"github.com/frahmantamala/hr-dashboard/internal/analytics"
	"github.com/frahmantamala/hr-dashboard/internal/core/events"
	"github.com/frahmantamala/hr-dashboard/internal/employee"
	"github.com/frahmantamala/hr-dashboard/internal/preference"
	preferencePostgres "github.com/frahmantamala/hr-dashboard/internal/preference/postgres"
	"github.com/frahmantamala/hr-dashboard/internal/roster"
	"github.com/frahmantamala/hr-dashboard/internal/store"
	"github.com/frahmantamala/hr-dashboard/internal/transport"
	"github.com/frahmantamala/hr-dashboard/internal/transport/middleware"
	"github.com/frahmantamala/hr-dashboard/internal/transport/rest"
	"github.com/frahmantamala/hr-dashboard/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Router   *chi.Mux
	Store    *store.Store
	Loader   *roster.Loader
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	deps, err := initializeDependencies(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register routes: %v\n", err)
		os.Exit(1)
	}

	// Initial roster fetch runs in the background; progress is visible through /employees/status
	deps.Loader.Start(ctx)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		stop()
		shutdownCtx, cancel := internal.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	doc, err := middleware.LoadOpenAPI(api.OpenAPISpec)
	if err != nil {
		return err
	}

	return rest.RegisterAllRoutes(deps.Router, rest.RouterConfig{
		DB:             deps.DB.DB,
		DBComponent:    deps.Config.Database.Driver,
		AllowedOrigins: deps.Config.Server.AllowedOriginList(),
		OpenAPISpec:    api.OpenAPISpec,
		OpenAPIDoc:     doc,
		Logger:         deps.Logger,
	}, deps.Handlers)
}

func initializeDependencies(ctx context.Context) (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(config)
	lg := logger.LoggerWrapper()

	conn, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if config.Database.AutoMigrate {
		if err := db.Migrate(ctx, conn.DB, db.Dialect(config.Database.Driver), false); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	gdb, err := openGorm(config.Database, conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	// Restore bookmarks and dark mode before the store is built
	prefService := preference.NewService(preferencePostgres.NewPreferenceRepository(gdb), config.Storage.Key, lg)
	loadCtx, cancel := internal.WithTimeout(ctx, 0)
	persisted, err := prefService.Load(loadCtx)
	cancel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	eventBus := events.NewEventBus(lg)
	prefService.RegisterEventHandlers(eventBus)

	dashboardStore := store.New(
		store.WithPersisted(persisted),
		store.WithPublisher(eventBus),
		store.WithLogger(lg),
	)
	dashboard := store.NewDashboard(dashboardStore)

	client := roster.NewClient(roster.Config{
		BaseURL: config.Roster.BaseURL,
		Limit:   config.Roster.Limit,
		Timeout: config.Roster.Timeout,
	}, lg)
	generator := roster.NewGenerator(config.Roster.Seed)
	loader := roster.NewLoader(client, generator, dashboardStore, lg, roster.WithLoadTimeout(config.Roster.Timeout))

	base := transport.NewBaseHandler(lg)
	handlers := rest.Handlers{
		Employee:   employee.NewHandler(base, employee.NewService(dashboard, generator, loader, lg)),
		Analytics:  analytics.NewHandler(base, analytics.NewService(dashboard, lg)),
		Preference: preference.NewHandler(base, dashboardStore),
	}

	return &Dependencies{
		Config:   config,
		DB:       conn,
		Router:   chi.NewRouter(),
		Store:    dashboardStore,
		Loader:   loader,
		Handlers: handlers,
		Logger:   lg,
	}, nil
}
