package malady

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/personnel-management/internal"
	maladyDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/malady"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*maladyDatamodel.Malady, error)
	GetByID(ctx context.Context, id int64) (*maladyDatamodel.Malady, error)
	GetByPerson(ctx context.Context, nom, prenom string) ([]*maladyDatamodel.Malady, error)
	GetByRole(ctx context.Context, role string) ([]*maladyDatamodel.Malady, error)
	Create(ctx context.Context, malady *maladyDatamodel.Malady) error
	Update(ctx context.Context, malady *maladyDatamodel.Malady) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every medical record, newest first.
func (s *Service) List(ctx context.Context) ([]*Malady, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list maladies", "error", err)
		return nil, fmt.Errorf("list maladies: %w", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) ListByEmployee(ctx context.Context, nom, prenom string) ([]*Malady, error) {
	rows, err := s.repo.GetByPerson(ctx, nom, prenom)
	if err != nil {
		s.logger.Error("failed to list employee maladies", "error", err, "nom", nom, "prenom", prenom)
		return nil, fmt.Errorf("list maladies for %s %s: %w", nom, prenom, err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) ListByRole(ctx context.Context, role string) ([]*Malady, error) {
	rows, err := s.repo.GetByRole(ctx, role)
	if err != nil {
		s.logger.Error("failed to list maladies by role", "error", err, "role", role)
		return nil, fmt.Errorf("list maladies for role %s: %w", role, err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Malady, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get malady", "error", err, "malady_id", id)
		return nil, fmt.Errorf("get malady %d: %w", id, err)
	}
	if row == nil {
		return nil, internal.ErrMaladyNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(ctx context.Context, dto MaladyDTO) (*Malady, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("malady validation failed", "error", err, "nom", dto.Nom, "prenom", dto.Prenom)
		return nil, err
	}

	malady := NewMalady(dto)
	row := ToDataModel(malady)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create malady", "error", err, "nom", dto.Nom, "prenom", dto.Prenom)
		return nil, fmt.Errorf("create malady: %w", err)
	}
	malady.ID = row.ID

	s.logger.Info("malady created", "malady_id", malady.ID, "nom", malady.Nom, "prenom", malady.Prenom)
	return malady, nil
}

// Update replaces every field of an existing record.
func (s *Service) Update(ctx context.Context, id int64, dto MaladyDTO) error {
	malady, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("malady validation failed", "error", err, "malady_id", id)
		return err
	}

	malady.Replace(dto)
	if err := s.repo.Update(ctx, ToDataModel(malady)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrMaladyNotFound
		}
		s.logger.Error("failed to update malady", "error", err, "malady_id", id)
		return fmt.Errorf("update malady %d: %w", id, err)
	}

	s.logger.Info("malady updated", "malady_id", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrMaladyNotFound
		}
		s.logger.Error("failed to delete malady", "error", err, "malady_id", id)
		return fmt.Errorf("delete malady %d: %w", id, err)
	}

	s.logger.Info("malady deleted", "malady_id", id)
	return nil
}
