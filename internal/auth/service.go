package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/personnel-management/internal"
	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
)

type CredentialRepository interface {
	GetByUsername(ctx context.Context, username string) (*employeeDatamodel.Employee, error)
}

type Service struct {
	repo      CredentialRepository
	tokens    TokenGenerator
	passwords PasswordVerifier
	logger    *slog.Logger
}

func NewService(repo CredentialRepository, tokens TokenGenerator, passwords PasswordVerifier, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// Login checks the credentials and issues a token. An unknown username and
// a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	employee, err := s.repo.GetByUsername(ctx, dto.Username)
	if err != nil {
		s.logger.Error("failed to load credentials", "error", err, "username", dto.Username)
		return nil, fmt.Errorf("login: %w", err)
	}
	if employee == nil || !s.passwords.Matches(employee.Password, dto.Password) {
		s.logger.Warn("login rejected", "username", dto.Username)
		return nil, internal.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(TokenSubject{
		UserID:   employee.ID,
		Username: employee.Username,
		Role:     employee.Role,
	})
	if err != nil {
		s.logger.Error("failed to issue token", "error", err, "user_id", employee.ID)
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info("login succeeded", "user_id", employee.ID, "username", employee.Username)
	return &LoginResponse{
		Token:    token,
		Role:     employee.Role,
		UserID:   employee.ID,
		Username: employee.Username,
		Nom:      employee.Nom,
		Prenom:   employee.Prenom,
	}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}
