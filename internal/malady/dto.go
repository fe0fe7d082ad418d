package malady

import "github.com/frahmantamala/personnel-management/internal/core/common/validation"

// MaladyDTO is the request body for both create and update.
type MaladyDTO struct {
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// Validate checks the description first, then the person's names.
func (d MaladyDTO) Validate() error {
	if appErr := validation.ValidateDescription(d.Description); appErr != nil {
		return appErr
	}
	if appErr := validation.ValidatePersonName(d.Nom, d.Prenom); appErr != nil {
		return appErr
	}
	return nil
}

type MaladyResponse struct {
	ID          int64  `json:"id"`
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Role        string `json:"role"`
	Description string `json:"description"`
}
