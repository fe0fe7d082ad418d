package postgres

import (
	"context"
	"errors"
	"strings"

	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error) {
	var e employeeDatamodel.Employee
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&employeeDatamodel.Employee{}).Where("username = ?", username)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search matches term against nom, prenom and username ignoring case.
// Case is folded in Go: SQLite's LOWER only folds ASCII.
func (r *EmployeeRepository) Search(ctx context.Context, term string) ([]*employeeDatamodel.Employee, error) {
	var employees []*employeeDatamodel.Employee
	if err := r.db.WithContext(ctx).Order("nom ASC").Order("id ASC").Find(&employees).Error; err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return employees, nil
	}

	matches := make([]*employeeDatamodel.Employee, 0, len(employees))
	for _, e := range employees {
		if containsFold(e.Nom, term) || containsFold(e.Prenom, term) || containsFold(e.Username, term) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func containsFold(value, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(value), lowerTerm)
}

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDatamodel.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) Update(ctx context.Context, e *employeeDatamodel.Employee) error {
	result := r.db.WithContext(ctx).
		Model(&employeeDatamodel.Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"nom":      e.Nom,
			"prenom":   e.Prenom,
			"tele":     e.Tele,
			"address":  e.Address,
			"username": e.Username,
			"password": e.Password,
			"photo":    e.Photo,
			"role":     e.Role,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return employee.ErrNotFound
	}
	return nil
}
