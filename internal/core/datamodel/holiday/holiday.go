package holiday

import "time"

type Holiday struct {
	ID        int64     `gorm:"primaryKey"`
	Nom       string    `gorm:"column:nom;not null;index:idx_holidays_person"`
	Prenom    string    `gorm:"column:prenom;not null;index:idx_holidays_person"`
	Role      string    `gorm:"column:role"`
	DateDebut time.Time `gorm:"column:date_debut;type:date;not null"`
	DateFin   time.Time `gorm:"column:date_fin;type:date;not null"`
}

func (Holiday) TableName() string {
	return "Holidays"
}
