package malady

type Malady struct {
	ID          int64  `gorm:"primaryKey"`
	Nom         string `gorm:"column:nom;not null"`
	Prenom      string `gorm:"column:prenom;not null"`
	Role        string `gorm:"column:role;index"`
	Description string `gorm:"column:description;not null"`
}

func (Malady) TableName() string {
	return "Maladies"
}
