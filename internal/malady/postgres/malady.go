package postgres

import (
	"context"
	"errors"

	maladyDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/malady"
	"github.com/frahmantamala/personnel-management/internal/malady"
	"gorm.io/gorm"
)

type MaladyRepository struct {
	db *gorm.DB
}

func NewMaladyRepository(db *gorm.DB) malady.RepositoryAPI {
	return &MaladyRepository{db: db}
}

func (r *MaladyRepository) GetAll(ctx context.Context) ([]*maladyDatamodel.Malady, error) {
	var maladies []*maladyDatamodel.Malady
	err := r.db.WithContext(ctx).Order("id DESC").Find(&maladies).Error
	return maladies, err
}

func (r *MaladyRepository) GetByID(ctx context.Context, id int64) (*maladyDatamodel.Malady, error) {
	var m maladyDatamodel.Malady
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaladyRepository) GetByPerson(ctx context.Context, nom, prenom string) ([]*maladyDatamodel.Malady, error) {
	var maladies []*maladyDatamodel.Malady
	err := r.db.WithContext(ctx).
		Where("nom = ? AND prenom = ?", nom, prenom).
		Order("id DESC").
		Find(&maladies).Error
	return maladies, err
}

func (r *MaladyRepository) GetByRole(ctx context.Context, role string) ([]*maladyDatamodel.Malady, error) {
	var maladies []*maladyDatamodel.Malady
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("id DESC").
		Find(&maladies).Error
	return maladies, err
}

func (r *MaladyRepository) Create(ctx context.Context, m *maladyDatamodel.Malady) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MaladyRepository) Update(ctx context.Context, m *maladyDatamodel.Malady) error {
	result := r.db.WithContext(ctx).
		Model(&maladyDatamodel.Malady{}).
		Where("id = ?", m.ID).
		Updates(map[string]interface{}{
			"nom":         m.Nom,
			"prenom":      m.Prenom,
			"role":        m.Role,
			"description": m.Description,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return malady.ErrNotFound
	}
	return nil
}

func (r *MaladyRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&maladyDatamodel.Malady{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return malady.ErrNotFound
	}
	return nil
}
