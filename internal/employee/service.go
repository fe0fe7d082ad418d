package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/frahmantamala/personnel-management/internal"
	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
)

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*employeeDatamodel.Employee, error)
	GetByID(ctx context.Context, id int64) (*employeeDatamodel.Employee, error)
	// UsernameExists reports whether another row than excludeID holds username.
	UsernameExists(ctx context.Context, username string, excludeID int64) (bool, error)
	Search(ctx context.Context, term string) ([]*employeeDatamodel.Employee, error)
	Create(ctx context.Context, employee *employeeDatamodel.Employee) error
	Update(ctx context.Context, employee *employeeDatamodel.Employee) error
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher turns a submitted password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo      RepositoryAPI
	passwords PasswordHasher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, passwords PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

func (s *Service) List(ctx context.Context) ([]*Employee, error) {
	rows, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Employee, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, fmt.Errorf("get employee %d: %w", id, err)
	}
	if row == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return FromDataModel(row), nil
}

// Search matches term case-insensitively against nom, prenom and username.
// A blank term returns everyone. Results are ordered by nom.
func (s *Service) Search(ctx context.Context, term string) ([]*Employee, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	rows, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("failed to search employees", "error", err, "term", term)
		return nil, fmt.Errorf("search employees: %w", err)
	}
	return FromDataModelSlice(rows), nil
}

func (s *Service) Register(ctx context.Context, dto RegisterDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("registration validation failed", "error", err, "username", dto.Username)
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, dto.Username, 0); err != nil {
		return nil, err
	}

	employee := NewEmployee(dto)
	hashed, err := s.passwords.Hash(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("register employee: %w", err)
	}
	employee.Password = hashed

	row := ToDataModel(employee)
	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Error("failed to create employee", "error", err, "username", dto.Username)
		return nil, fmt.Errorf("register employee: %w", err)
	}
	employee.ID = row.ID

	s.logger.Info("employee registered", "employee_id", employee.ID, "username", employee.Username, "role", employee.Role)
	return employee, nil
}

// Update applies only the non-empty fields of dto.
func (s *Service) Update(ctx context.Context, id int64, dto UpdateEmployeeDTO) error {
	employee, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dto.Username != "" {
		if err := s.ensureUsernameFree(ctx, dto.Username, id); err != nil {
			return err
		}
	}

	if dto.Password != "" {
		hashed, err := s.passwords.Hash(dto.Password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err, "employee_id", id)
			return fmt.Errorf("update employee %d: %w", id, err)
		}
		dto.Password = hashed
	}

	employee.Apply(dto)
	if err := s.repo.Update(ctx, ToDataModel(employee)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return fmt.Errorf("update employee %d: %w", id, err)
	}

	s.logger.Info("employee updated", "employee_id", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrEmployeeNotFound
		}
		s.logger.Error("failed to delete employee", "error", err, "employee_id", id)
		return fmt.Errorf("delete employee %d: %w", id, err)
	}

	s.logger.Info("employee deleted", "employee_id", id)
	return nil
}

// ensureUsernameFree is a read before the write; concurrent registrations
// with the same username can both pass.
func (s *Service) ensureUsernameFree(ctx context.Context, username string, excludeID int64) error {
	taken, err := s.repo.UsernameExists(ctx, username, excludeID)
	if err != nil {
		s.logger.Error("failed to check username", "error", err, "username", username)
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		s.logger.Warn("username already exists", "username", username)
		return internal.ErrUsernameTaken
	}
	return nil
}
