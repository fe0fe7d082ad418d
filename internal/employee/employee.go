package employee

import (
	"errors"

	employeeDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/employee"
)

// DefaultRole is assigned at registration when no role is given.
const DefaultRole = "Employee"

// ErrNotFound is returned by repositories when no row matched the id.
var ErrNotFound = errors.New("employee not found")

type Employee struct {
	ID       int64
	Nom      string
	Prenom   string
	Tele     string
	Address  string
	Username string
	Password string
	Photo    string
	Role     string
}

func (e *Employee) FullName() string {
	return e.Nom + " " + e.Prenom
}

// Apply copies every non-empty field of dto onto e. The password is
// expected to be already hashed by the caller.
func (e *Employee) Apply(dto UpdateEmployeeDTO) {
	if dto.Nom != "" {
		e.Nom = dto.Nom
	}
	if dto.Prenom != "" {
		e.Prenom = dto.Prenom
	}
	if dto.Tele != "" {
		e.Tele = dto.Tele
	}
	if dto.Address != "" {
		e.Address = dto.Address
	}
	if dto.Username != "" {
		e.Username = dto.Username
	}
	if dto.Password != "" {
		e.Password = dto.Password
	}
	if dto.Photo != "" {
		e.Photo = dto.Photo
	}
	if dto.Role != "" {
		e.Role = dto.Role
	}
}

func NewEmployee(dto RegisterDTO) *Employee {
	role := dto.Role
	if role == "" {
		role = DefaultRole
	}
	return &Employee{
		Nom:      dto.Nom,
		Prenom:   dto.Prenom,
		Tele:     dto.Tele,
		Address:  dto.Address,
		Username: dto.Username,
		Password: dto.Password,
		Photo:    dto.Photo,
		Role:     role,
	}
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:       e.ID,
		Nom:      e.Nom,
		Prenom:   e.Prenom,
		Tele:     e.Tele,
		Address:  e.Address,
		Username: e.Username,
		Photo:    e.Photo,
		Role:     e.Role,
	}
}

func (e *Employee) ToRegisterResponse() RegisterResponse {
	return RegisterResponse{
		ID:       e.ID,
		Username: e.Username,
		Role:     e.Role,
		Nom:      e.Nom,
		Prenom:   e.Prenom,
	}
}

func ToResponses(employees []*Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, e.ToResponse())
	}
	return responses
}

func ToSearchResponse(employees []*Employee) SearchResponse {
	results := make([]SearchResult, 0, len(employees))
	for _, e := range employees {
		results = append(results, SearchResult{
			EmployeeResponse: e.ToResponse(),
			FullName:         e.FullName(),
		})
	}
	return SearchResponse{
		TotalCount: len(results),
		Employees:  results,
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:       e.ID,
		Nom:      e.Nom,
		Prenom:   e.Prenom,
		Tele:     e.Tele,
		Address:  e.Address,
		Username: e.Username,
		Password: e.Password,
		Photo:    e.Photo,
		Role:     e.Role,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:       e.ID,
		Nom:      e.Nom,
		Prenom:   e.Prenom,
		Tele:     e.Tele,
		Address:  e.Address,
		Username: e.Username,
		Password: e.Password,
		Photo:    e.Photo,
		Role:     e.Role,
	}
}

func FromDataModelSlice(rows []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
