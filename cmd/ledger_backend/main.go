package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portsrepo "github.com/invoicelab/accounting-backbone/internal/core/ports/repositories"
	"github.com/invoicelab/accounting-backbone/internal/core/services"
	"github.com/invoicelab/accounting-backbone/internal/platform/ctxlog"
	"github.com/invoicelab/accounting-backbone/internal/platform/featureflags"
	"github.com/invoicelab/accounting-backbone/internal/repositories/database/pgsql"
	"github.com/invoicelab/accounting-backbone/pkg/config"
	"github.com/invoicelab/accounting-backbone/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := ctxlog.WithLogger(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	flags := featureflags.NewSettingsBacked(cfg.EnableAccountingBackbone, repos.SettingsRepo)
	container := services.NewServicesContainer(repos, flags)

	logger.Info("Ledger services initialized",
		slog.Bool("accounting_backbone_enabled", cfg.EnableAccountingBackbone))

	// Optional startup sanity check: run a trial balance for a known company
	// and log whether debits equal credits.
	if cfg.StartupCheckCompanyID != "" {
		runStartupCheck(ctx, logger, repos, container, cfg.StartupCheckCompanyID)
	}
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("Database schema is up to date")
	} else {
		logger.Info("Database migrations applied successfully")
	}
	return nil
}

// runStartupCheck generates a trial balance for the configured company and
// logs whether the ledger balances. Failures are logged, never fatal.
func runStartupCheck(ctx context.Context, logger *slog.Logger, repos portsrepo.RepositoryProvider, container *services.ServicesContainer, companyID string) {
	company, err := repos.CompanyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		logger.Error("Startup check: failed to load company",
			slog.String("company_id", companyID),
			slog.String("error", err.Error()))
		return
	}

	report := container.Reporting.TrialBalance(ctx, *company)
	if report.Error != "" {
		logger.Warn("Startup check: trial balance unavailable",
			slog.String("company_id", companyID),
			slog.String("status", report.Status),
			slog.String("error", report.Error))
		return
	}
	logger.Info("Startup check: trial balance generated",
		slog.String("company_id", companyID),
		slog.String("total_debits", report.TotalDebitsDisplay),
		slog.String("total_credits", report.TotalCreditsDisplay),
		slog.Bool("is_balanced", report.IsBalanced))
}
