package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/personnel-management/internal"
	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
	holidayDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/holiday"
	maladyDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/malady"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run db migration files under db/migrations directory",
	}
	migrateRollback bool
	migrateDir      string
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
	migrateCmd.PersistentFlags().StringVarP(&migrateDir, "dir", "d", "db/migrations", "sql migrations directory")
}

// runMigration applies the SQL migrations on postgres. The sqlite backend
// is for local use only and gets its schema from the gorm models.
func runMigration(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	lg := logger.L()

	if cfg.Database.GetDriver() == internal.DriverSQLite {
		db, gormDB, err := initDB(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if migrateRollback {
			return fmt.Errorf("rollback is not supported for the sqlite driver")
		}
		if err := gormDB.WithContext(ctx).AutoMigrate(
			&employeeDatamodel.Employee{},
			&holidayDatamodel.Holiday{},
			&maladyDatamodel.Malady{},
		); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		lg.Info("sqlite schema migrated")
		return nil
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.GetDSN())
	if err != nil {
		return fmt.Errorf("goose: failed to open DB: %w", err)
	}
	defer db.Close()
	goose.SetTableName("schema_migrations")

	command := "up"
	if migrateRollback {
		command = "down"
	}
	if err := goose.RunContext(ctx, command, db, migrateDir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	lg.Info("migrations applied", "command", command, "dir", migrateDir)
	return nil
}
