package employee

import (
	"github.com/frahmantamala/personnel-management/internal/core/common/validation"
)

type RegisterDTO struct {
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Tele     string `json:"tele"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
	Photo    string `json:"photo"`
	Role     string `json:"role"`
}

func (d RegisterDTO) Validate() error {
	validator := validation.NewValidator()
	validator.Field("nom", d.Nom).Required()
	validator.Field("prenom", d.Prenom).Required()
	validator.Field("username", d.Username).Required()
	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	if appErr := validation.ValidatePassword(d.Password); appErr != nil {
		return appErr
	}
	return nil
}

// UpdateEmployeeDTO is a partial update: empty fields leave the stored
// value unchanged.
type UpdateEmployeeDTO struct {
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Tele     string `json:"tele"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
	Photo    string `json:"photo"`
	Role     string `json:"role"`
}

// EmployeeResponse is the public view of an employee. It never carries the
// password.
type EmployeeResponse struct {
	ID       int64  `json:"id"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
	Tele     string `json:"tele"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Photo    string `json:"photo"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Nom      string `json:"nom"`
	Prenom   string `json:"prenom"`
}

type SearchResult struct {
	EmployeeResponse
	FullName string `json:"fullName"`
}

type SearchResponse struct {
	TotalCount int            `json:"totalCount"`
	Employees  []SearchResult `json:"employees"`
}
