package export

import (
	"context"
	"fmt"

	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/holiday"
	"github.com/frahmantamala/personnel-management/internal/malady"
	"github.com/xuri/excelize/v2"
)

const (
	EmployeesSheet = "Employees"
	HolidaysSheet  = "Holidays"
	MaladiesSheet  = "Maladies"
)

type EmployeeLister interface {
	List(ctx context.Context) ([]*employee.Employee, error)
}

type HolidayLister interface {
	List(ctx context.Context) ([]*holiday.Holiday, error)
}

type MaladyLister interface {
	List(ctx context.Context) ([]*malady.Malady, error)
}

type Sources struct {
	Employees EmployeeLister
	Holidays  HolidayLister
	Maladies  MaladyLister
}

// Workbook builds one sheet per table. Passwords are never written.
func Workbook(ctx context.Context, src Sources) (*excelize.File, error) {
	employees, err := src.Employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	holidays, err := src.Holidays.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	maladies, err := src.Maladies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load maladies: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), EmployeesSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{HolidaysSheet, MaladiesSheet} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	employeeRows := make([][]interface{}, 0, len(employees))
	for _, e := range employees {
		employeeRows = append(employeeRows, []interface{}{e.ID, e.Nom, e.Prenom, e.Tele, e.Address, e.Username, e.Photo, e.Role})
	}
	holidayRows := make([][]interface{}, 0, len(holidays))
	for _, h := range holidays {
		holidayRows = append(holidayRows, []interface{}{
			h.ID, h.Nom, h.Prenom, h.Role,
			h.DateDebut.Format(holiday.DateLayout),
			h.DateFin.Format(holiday.DateLayout),
		})
	}
	maladyRows := make([][]interface{}, 0, len(maladies))
	for _, m := range maladies {
		maladyRows = append(maladyRows, []interface{}{m.ID, m.Nom, m.Prenom, m.Role, m.Description})
	}

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{EmployeesSheet, []interface{}{"ID", "Nom", "Prenom", "Tele", "Address", "Username", "Photo", "Role"}, employeeRows},
		{HolidaysSheet, []interface{}{"ID", "Nom", "Prenom", "Role", "Date debut", "Date fin"}, holidayRows},
		{MaladiesSheet, []interface{}{"ID", "Nom", "Prenom", "Role", "Description"}, maladyRows},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
