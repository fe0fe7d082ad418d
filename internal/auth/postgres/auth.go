package auth

import (
	"context"
	"errors"

	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// GetByUsername matches the username exactly; the lowest id wins if the
// table holds duplicates.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*employeeDatamodel.Employee, error) {
	var employee employeeDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id ASC").
		First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}
