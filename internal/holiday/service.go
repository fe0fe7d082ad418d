package holiday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/personnel-management/internal"
	holidayDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/holiday"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*holidayDatamodel.Holiday, error)
	GetByID(ctx context.Context, id int64) (*holidayDatamodel.Holiday, error)
	GetByPerson(ctx context.Context, nom, prenom string) ([]*holidayDatamodel.Holiday, error)
	Create(ctx context.Context, holiday *holidayDatamodel.Holiday) error
	Update(ctx context.Context, holiday *holidayDatamodel.Holiday) error
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

// List returns every holiday ordered by start date.
func (s *Service) List(ctx context.Context) ([]*Holiday, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list holidays", "error", err)
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	return FromDataModelSlice(rows), nil
}

// ListByEmployee returns one person's holidays, latest start date first.
func (s *Service) ListByEmployee(ctx context.Context, nom, prenom string) ([]*Holiday, error) {
	rows, err := s.repo.GetByPerson(ctx, nom, prenom)
	if err != nil {
		s.logger.Error("failed to list employee holidays", "error", err, "nom", nom, "prenom", prenom)
		return nil, fmt.Errorf("list holidays for %s %s: %w", nom, prenom, err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Holiday, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get holiday", "error", err, "holiday_id", id)
		return nil, fmt.Errorf("get holiday %d: %w", id, err)
	}
	if row == nil {
		return nil, internal.ErrHolidayNotFound
	}
	return FromDataModel(row), nil
}

func (s *Service) Create(ctx context.Context, dto HolidayDTO) (*Holiday, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("holiday validation failed", "error", err, "nom", dto.Nom, "prenom", dto.Prenom)
		return nil, err
	}

	holiday := NewHoliday(dto)
	if err := s.checkOverlap(ctx, holiday, 0); err != nil {
		return nil, err
	}

	row := ToDataModel(holiday)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create holiday", "error", err, "nom", dto.Nom, "prenom", dto.Prenom)
		return nil, fmt.Errorf("create holiday: %w", err)
	}
	holiday.ID = row.ID

	s.logger.Info("holiday created",
		"holiday_id", holiday.ID,
		"nom", holiday.Nom,
		"prenom", holiday.Prenom,
		"date_debut", holiday.DateDebut.Format(DateLayout),
		"date_fin", holiday.DateFin.Format(DateLayout))

	return holiday, nil
}

// Update replaces every mutable field of the holiday, re-running the date
// ordering and overlap rules with the holiday itself excluded.
func (s *Service) Update(ctx context.Context, id int64, dto HolidayDTO) error {
	holiday, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Warn("holiday validation failed", "error", err, "holiday_id", id)
		return err
	}

	holiday.Replace(dto)
	if err := s.checkOverlap(ctx, holiday, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, ToDataModel(holiday)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrHolidayNotFound
		}
		s.logger.Error("failed to update holiday", "error", err, "holiday_id", id)
		return fmt.Errorf("update holiday %d: %w", id, err)
	}

	s.logger.Info("holiday updated", "holiday_id", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrHolidayNotFound
		}
		s.logger.Error("failed to delete holiday", "error", err, "holiday_id", id)
		return fmt.Errorf("delete holiday %d: %w", id, err)
	}

	s.logger.Info("holiday deleted", "holiday_id", id)
	return nil
}

// checkOverlap reads the person's stored holidays and rejects the candidate
// when any of them shares a day with it. The read and the following write
// are not serialized: two concurrent requests can both pass.
func (s *Service) checkOverlap(ctx context.Context, candidate *Holiday, excludeID int64) error {
	rows, err := s.repo.GetByPerson(ctx, candidate.Nom, candidate.Prenom)
	if err != nil {
		s.logger.Error("failed to load holidays for overlap check", "error", err, "nom", candidate.Nom, "prenom", candidate.Prenom)
		return fmt.Errorf("overlap check: %w", err)
	}

	if HasOverlap(candidate, FromDataModelSlice(rows), excludeID) {
		s.logger.Warn("holiday overlaps an existing request",
			"nom", candidate.Nom,
			"prenom", candidate.Prenom,
			"date_debut", candidate.DateDebut.Format(DateLayout),
			"date_fin", candidate.DateFin.Format(DateLayout),
			"exclude_id", excludeID)
		return internal.ErrHolidayOverlap
	}
	return nil
}
