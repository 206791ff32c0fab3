package entity

// Staff roles accepted by the system
const (
	RoleMedico    = "MEDICO"
	RoleTerapeuta = "TERAPEUTA"
	RoleAdmin     = "ADMIN"
	RoleDevop     = "DEVOP"
)

// Roles is the full set of valid role values, in declaration order.
var Roles = []string{RoleMedico, RoleTerapeuta, RoleAdmin, RoleDevop}

// User represents a staff account (physician, therapist, admin, devop)
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Surname      string `gorm:"type:varchar(100);not null" json:"surname"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	PasswordHash string `gorm:"type:text;not null;column:password_hash" json:"-"`
}

func (User) TableName() string {
	return "users"
}
