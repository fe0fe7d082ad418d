package malady

import (
	"errors"

	maladyDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/malady"
)

// ErrNotFound is returned by repositories when no row matched the id.
var ErrNotFound = errors.New("malady not found")

// Malady is a medical record attached to a person by name.
type Malady struct {
	ID          int64
	Nom         string
	Prenom      string
	Role        string
	Description string
}

func NewMalady(dto MaladyDTO) *Malady {
	m := &Malady{}
	m.Replace(dto)
	return m
}

// Replace overwrites every mutable field from dto.
func (m *Malady) Replace(dto MaladyDTO) {
	m.Nom = dto.Nom
	m.Prenom = dto.Prenom
	m.Role = dto.Role
	m.Description = dto.Description
}

func (m *Malady) ToResponse() MaladyResponse {
	return MaladyResponse{
		ID:          m.ID,
		Nom:         m.Nom,
		Prenom:      m.Prenom,
		Role:        m.Role,
		Description: m.Description,
	}
}

func ToResponses(maladies []*Malady) []MaladyResponse {
	responses := make([]MaladyResponse, 0, len(maladies))
	for _, m := range maladies {
		responses = append(responses, m.ToResponse())
	}
	return responses
}

func ToDataModel(m *Malady) *maladyDatamodel.Malady {
	return &maladyDatamodel.Malady{
		ID:          m.ID,
		Nom:         m.Nom,
		Prenom:      m.Prenom,
		Role:        m.Role,
		Description: m.Description,
	}
}

func FromDataModel(m *maladyDatamodel.Malady) *Malady {
	return &Malady{
		ID:          m.ID,
		Nom:         m.Nom,
		Prenom:      m.Prenom,
		Role:        m.Role,
		Description: m.Description,
	}
}

func FromDataModelSlice(rows []*maladyDatamodel.Malady) []*Malady {
	result := make([]*Malady, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
