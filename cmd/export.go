package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/personnel-management/internal/auth"
	"github.com/frahmantamala/personnel-management/internal/employee"
	employeePostgres "github.com/frahmantamala/personnel-management/internal/employee/postgres"
	"github.com/frahmantamala/personnel-management/internal/export"
	"github.com/frahmantamala/personnel-management/internal/holiday"
	holidayPostgres "github.com/frahmantamala/personnel-management/internal/holiday/postgres"
	"github.com/frahmantamala/personnel-management/internal/malady"
	maladyPostgres "github.com/frahmantamala/personnel-management/internal/malady/postgres"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/spf13/cobra"
)

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export employees, holidays and medical records to an Excel workbook",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "personnel.xlsx", "output file")
}

func runExport(_ *cobra.Command, _ []string) error {
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

	passwords, err := auth.NewPasswordMatcher(cfg.Security.PasswordMode, cfg.Security.BCryptCost)
	if err != nil {
		return err
	}

	f, err := export.Workbook(ctx, export.Sources{
		Employees: employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), passwords, lg),
		Holidays:  holiday.NewService(holidayPostgres.NewHolidayRepository(gormDB), lg),
		Maladies:  malady.NewService(maladyPostgres.NewMaladyRepository(gormDB), lg),
	})
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(exportPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	lg.Info("workbook exported", "path", exportPath)
	return nil
}
