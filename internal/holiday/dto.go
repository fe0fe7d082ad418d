package holiday

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/core/common/validation"
)

const DateLayout = "2006-01-02"

var acceptedDateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// Date is a calendar day on the wire. It accepts a plain date, a local
// timestamp or RFC 3339 and always renders as YYYY-MM-DD.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: TruncateDate(t)}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// HolidayDTO is the request body for both create and update.
type HolidayDTO struct {
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Role      string `json:"role"`
	DateDebut Date   `json:"dateDebut"`
	DateFin   Date   `json:"dateFin"`
}

func (d HolidayDTO) Range() DateRange {
	return NewDateRange(d.DateDebut.Time, d.DateFin.Time)
}

// Validate checks required fields, then date ordering.
func (d HolidayDTO) Validate() error {
	validator := validation.NewValidator()
	validator.Field("nom", d.Nom).Required()
	validator.Field("prenom", d.Prenom).Required()
	validator.Field("dateDebut", d.DateDebut.Time).Required()
	validator.Field("dateFin", d.DateFin.Time).Required()
	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}

	if !d.Range().Valid() {
		return internal.ErrInvalidRange
	}
	return nil
}

type HolidayResponse struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Role      string `json:"role"`
	DateDebut Date   `json:"dateDebut"`
	DateFin   Date   `json:"dateFin"`
}
