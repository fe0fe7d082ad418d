package auth

import (
	"fmt"

	"github.com/frahmantamala/personnel-management/internal"
	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher stores and compares passwords according to the configured
// mode. In plain mode passwords are kept verbatim and compared exactly.
type PasswordMatcher struct {
	mode string
	cost int
}

func NewPasswordMatcher(mode string, cost int) (*PasswordMatcher, error) {
	switch mode {
	case "", internal.PasswordModePlain:
		return &PasswordMatcher{mode: internal.PasswordModePlain}, nil
	case internal.PasswordModeBcrypt:
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range", cost)
		}
		return &PasswordMatcher{mode: internal.PasswordModeBcrypt, cost: cost}, nil
	default:
		return nil, fmt.Errorf("unsupported password mode %q", mode)
	}
}

func (p *PasswordMatcher) Mode() string {
	return p.mode
}

// Hash returns the value to persist for password.
func (p *PasswordMatcher) Hash(password string) (string, error) {
	if p.mode != internal.PasswordModeBcrypt {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (p *PasswordMatcher) Matches(stored, candidate string) bool {
	if p.mode != internal.PasswordModeBcrypt {
		return stored == candidate
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
