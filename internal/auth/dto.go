package auth

import (
	"github.com/frahmantamala/personnel-management/internal/core/common/validation"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	validator := validation.NewValidator()
	validator.Field("username", d.Username).Required()
	validator.Field("password", d.Password).Required()
	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
