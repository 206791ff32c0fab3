package entity

// Appointment statuses
const (
	AppointmentActivo    = "ACTIVO"
	AppointmentCancelado = "CANCELADO"
)

// AppointmentStatuses is the set of valid appointment status values.
var AppointmentStatuses = []string{AppointmentActivo, AppointmentCancelado}

// LeadTimes is the set of valid reminder lead-time values: one to six days,
// or one week. Informational only, no scheduling is attached to it.
var LeadTimes = []string{"1D", "2D", "3D", "4D", "5D", "6D", "1SEM"}

// Appointment represents a scheduled visit of a patient with a staff member.
// Date and time values travel as strings and are validated by the store's
// column types.
type Appointment struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Date      string  `gorm:"type:date;not null" json:"date"`
	Time      string  `gorm:"type:time;not null;column:time" json:"time"`
	Status    string  `gorm:"type:varchar(20);not null" json:"status"`
	Notes     string  `gorm:"type:text" json:"notes,omitempty"`
	LeadTime  *string `gorm:"type:varchar(10);column:lead_time" json:"lead_time,omitempty"`
	PatientID uint    `gorm:"not null;index;column:patient_id" json:"patient_id"`
	UserID    uint    `gorm:"not null;index;column:user_id" json:"user_id"`
}

func (Appointment) TableName() string {
	return "appointments"
}
