package holiday

import (
	"errors"
	"time"

	holidayDatamodel "github.com/frahmantamala/personnel-management/internal/core/datamodel/holiday"
)

// ErrNotFound is returned by repositories when no row matched the id.
var ErrNotFound = errors.New("holiday not found")

// Holiday is a leave request. People are identified by the exact
// (Nom, Prenom) pair; there is no key reference to an employee row.
type Holiday struct {
	ID        int64
	Nom       string
	Prenom    string
	Role      string
	DateDebut time.Time
	DateFin   time.Time
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TruncateDate drops the time of day and location, keeping the calendar date.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: TruncateDate(start), End: TruncateDate(end)}
}

// Valid reports whether End is not before Start.
func (r DateRange) Valid() bool {
	return !r.End.Before(r.Start)
}

// Overlaps reports whether a and b share at least one calendar day.
func Overlaps(a, b DateRange) bool {
	a = NewDateRange(a.Start, a.End)
	b = NewDateRange(b.Start, b.End)
	return !a.Start.After(b.End) && !a.End.Before(b.Start)
}

func (h *Holiday) Range() DateRange {
	return NewDateRange(h.DateDebut, h.DateFin)
}

// SamePerson compares names by exact string equality.
func (h *Holiday) SamePerson(nom, prenom string) bool {
	return h.Nom == nom && h.Prenom == prenom
}

// HasOverlap reports whether candidate's range collides with any existing
// holiday of the same person. The row whose id equals excludeID is skipped;
// pass 0 when creating.
func HasOverlap(candidate *Holiday, existing []*Holiday, excludeID int64) bool {
	want := candidate.Range()
	for _, h := range existing {
		if h == nil || (excludeID != 0 && h.ID == excludeID) {
			continue
		}
		if !h.SamePerson(candidate.Nom, candidate.Prenom) {
			continue
		}
		if Overlaps(want, h.Range()) {
			return true
		}
	}
	return false
}

func NewHoliday(dto HolidayDTO) *Holiday {
	return &Holiday{
		Nom:       dto.Nom,
		Prenom:    dto.Prenom,
		Role:      dto.Role,
		DateDebut: TruncateDate(dto.DateDebut.Time),
		DateFin:   TruncateDate(dto.DateFin.Time),
	}
}

// Replace overwrites every mutable field from dto.
func (h *Holiday) Replace(dto HolidayDTO) {
	h.Nom = dto.Nom
	h.Prenom = dto.Prenom
	h.Role = dto.Role
	h.DateDebut = TruncateDate(dto.DateDebut.Time)
	h.DateFin = TruncateDate(dto.DateFin.Time)
}

func (h *Holiday) ToResponse() HolidayResponse {
	return HolidayResponse{
		ID:        h.ID,
		Nom:       h.Nom,
		Prenom:    h.Prenom,
		Role:      h.Role,
		DateDebut: Date{Time: h.DateDebut},
		DateFin:   Date{Time: h.DateFin},
	}
}

func ToResponses(holidays []*Holiday) []HolidayResponse {
	responses := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, h.ToResponse())
	}
	return responses
}

func ToDataModel(h *Holiday) *holidayDatamodel.Holiday {
	return &holidayDatamodel.Holiday{
		ID:        h.ID,
		Nom:       h.Nom,
		Prenom:    h.Prenom,
		Role:      h.Role,
		DateDebut: TruncateDate(h.DateDebut),
		DateFin:   TruncateDate(h.DateFin),
	}
}

func FromDataModel(h *holidayDatamodel.Holiday) *Holiday {
	return &Holiday{
		ID:        h.ID,
		Nom:       h.Nom,
		Prenom:    h.Prenom,
		Role:      h.Role,
		DateDebut: TruncateDate(h.DateDebut),
		DateFin:   TruncateDate(h.DateFin),
	}
}

func FromDataModelSlice(rows []*holidayDatamodel.Holiday) []*Holiday {
	result := make([]*Holiday, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
