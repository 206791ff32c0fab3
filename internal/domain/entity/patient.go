package entity

// Sexes is the set of valid sex values for a patient record.
var Sexes = []string{"M", "F"}

// Patient represents a person under the practice's care. Only name and
// surname are mandatory; every other attribute stays NULL until supplied.
type Patient struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string   `gorm:"type:varchar(100);not null" json:"name"`
	Surname   string   `gorm:"type:varchar(100);not null" json:"surname"`
	Email     string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	BirthDate *string  `gorm:"type:date;column:birth_date" json:"birth_date,omitempty"`
	Alert     string   `gorm:"type:text" json:"alert,omitempty"`
	Sex       *string  `gorm:"type:char(1)" json:"sex,omitempty"`
	WeightKG  *float64 `gorm:"type:numeric(5,2);column:weight_kg" json:"weight_kg,omitempty"`
	Address   string   `gorm:"type:text" json:"address,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
