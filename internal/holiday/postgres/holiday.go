package postgres

import (
	"context"
	"errors"

	holidayDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/holiday"
	"github.com/frahmantamala/personnel-management/internal/holiday"
	"gorm.io/gorm"
)

type HolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) holiday.RepositoryAPI {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) GetAll(ctx context.Context) ([]*holidayDatamodel.Holiday, error) {
	var holidays []*holidayDatamodel.Holiday
	err := r.db.WithContext(ctx).Order("date_debut ASC").Order("id ASC").Find(&holidays).Error
	return holidays, err
}

func (r *HolidayRepository) GetByID(ctx context.Context, id int64) (*holidayDatamodel.Holiday, error) {
	var h holidayDatamodel.Holiday
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&h).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

// GetByPerson matches names exactly, newest start date first.
func (r *HolidayRepository) GetByPerson(ctx context.Context, nom, prenom string) ([]*holidayDatamodel.Holiday, error) {
	var holidays []*holidayDatamodel.Holiday
	err := r.db.WithContext(ctx).
		Where("nom = ? AND prenom = ?", nom, prenom).
		Order("date_debut DESC").
		Find(&holidays).Error
	return holidays, err
}

func (r *HolidayRepository) Create(ctx context.Context, h *holidayDatamodel.Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HolidayRepository) Update(ctx context.Context, h *holidayDatamodel.Holiday) error {
	result := r.db.WithContext(ctx).
		Model(&holidayDatamodel.Holiday{}).
		Where("id = ?", h.ID).
		Updates(map[string]interface{}{
			"nom":        h.Nom,
			"prenom":     h.Prenom,
			"role":       h.Role,
			"date_debut": h.DateDebut,
			"date_fin":   h.DateFin,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return holiday.ErrNotFound
	}
	return nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&holidayDatamodel.Holiday{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return holiday.ErrNotFound
	}
	return nil
}
