package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/auth"
	authPostgres "github.com/frahmantamala/personnel-management/internal/auth/postgres"
	"github.com/frahmantamala/personnel-management/internal/employee"
	employeePostgres "github.com/frahmantamala/personnel-management/internal/employee/postgres"
	"github.com/frahmantamala/personnel-management/internal/holiday"
	holidayPostgres "github.com/frahmantamala/personnel-management/internal/holiday/postgres"
	"github.com/frahmantamala/personnel-management/internal/malady"
	maladyPostgres "github.com/frahmantamala/personnel-management/internal/malady/postgres"
	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/frahmantamala/personnel-management/internal/transport/rest"
	"github.com/frahmantamala/personnel-management/internal/transport/swagger"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
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
	Config *internal.Config
	DB     *sqlx.DB
	Gorm   *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "driver", deps.Config.Database.GetDriver())

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			_ = deps.DB.Close()
			os.Exit(1)
		}
	}

	if err := deps.DB.Close(); err != nil {
		deps.Logger.Error("Database close error", "error", err)
	}
	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg := logger.L()

	db, gormDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	passwords, err := auth.NewPasswordMatcher(config.Security.PasswordMode, config.Security.BCryptCost)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure passwords: %w", err)
	}
	tokens := auth.NewTokenIssuer(config.Security.TokenSecret)

	base := transport.NewBaseHandler(lg).WithTimeout(config.Server.RequestTimeout)

	handlers := rest.Handlers{
		Auth:     auth.NewHandler(base, auth.NewService(authPostgres.NewRepository(gormDB), tokens, passwords, lg)),
		Employee: employee.NewHandler(base, employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), passwords, lg)),
		Holiday:  holiday.NewHandler(base, holiday.NewService(holidayPostgres.NewHolidayRepository(gormDB), lg)),
		Malady:   malady.NewHandler(base, malady.NewService(maladyPostgres.NewMaladyRepository(gormDB), lg)),
		Health:   rest.NewHealthHandler(db),
	}

	if path := config.Server.OpenAPIPath; path != "" {
		doc, err := swagger.LoadDocument(context.Background(), path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			lg.Warn("OpenAPI document not found, Swagger UI disabled", "path", path)
		case err != nil:
			_ = db.Close()
			return nil, err
		default:
			lg.Info("OpenAPI document loaded", "path", path, "operations", doc.Operations())
			handlers.OpenAPI = doc
		}
	}

	router := rest.NewRouter(handlers, rest.Options{
		AllowedOrigins: config.Server.Origins(),
		RequireAuth:    config.Security.RequireAuth,
	}, lg)

	return &Dependencies{
		Config: config,
		DB:     db,
		Gorm:   gormDB,
		Router: router,
		Logger: lg,
	}, nil
}
