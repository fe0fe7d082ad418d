package employee

type Employee struct {
	ID       int64  `gorm:"primaryKey"`
	Nom      string `gorm:"column:nom;not null"`
	Prenom   string `gorm:"column:prenom;not null"`
	Tele     string `gorm:"column:tele"`
	Address  string `gorm:"column:address"`
	Username string `gorm:"column:username;index"`
	Password string `gorm:"column:password"`
	Photo    string `gorm:"column:photo"`
	Role     string `gorm:"column:role"`
}

func (Employee) TableName() string {
	return "Employees"
}
