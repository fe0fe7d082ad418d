package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/auth"
	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
	holidayDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/holiday"
	maladyDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/malady"
	"github.com/frahmantamala/personnel-management/internal/employee"
	employeePostgres "github.com/frahmantamala/personnel-management/internal/employee/postgres"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	clearData    bool
	seedUsername string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a default administrator",
	Long:  `Create the default administrator account if it does not exist yet.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
	seedCmd.Flags().StringVar(&seedUsername, "username", "admin", "administrator username")
	seedCmd.Flags().StringVar(&seedPassword, "password", "admin123", "administrator password")
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	lg := logger.L()

	db, gormDB, err := initDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if clearData {
		if err := clearTables(ctx, gormDB); err != nil {
			return err
		}
		lg.Info("existing data cleared")
	}

	passwords, err := auth.NewPasswordMatcher(cfg.Security.PasswordMode, cfg.Security.BCryptCost)
	if err != nil {
		return err
	}
	service := employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), passwords, lg)

	admin, err := service.Register(ctx, employee.RegisterDTO{
		Nom:      "Admin",
		Prenom:   "System",
		Username: seedUsername,
		Password: seedPassword,
		Role:     "Admin",
	})
	if errors.Is(err, internal.ErrUsernameTaken) {
		fmt.Println("administrator already exists:", seedUsername)
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed administrator: %w", err)
	}

	fmt.Println("Seeded administrator:", admin.Username, "id", admin.ID)
	return nil
}

func clearTables(ctx context.Context, db *gorm.DB) error {
	for _, model := range []interface{}{
		&holidayDatamodel.Holiday{},
		&maladyDatamodel.Malady{},
		&employeeDatamodel.Employee{},
	} {
		if err := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}
