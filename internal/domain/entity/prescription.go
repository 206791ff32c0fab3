package entity

// Prescription represents medication or treatment issued to a patient by a
// staff member, optionally tied to the consultation it came out of.
type Prescription struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Content        string `gorm:"type:text;not null" json:"content"`
	IssueDate      string `gorm:"type:date;not null;column:issue_date" json:"issue_date"`
	ConsultationID *uint  `gorm:"index;column:consultation_id" json:"consultation_id,omitempty"`
	UserID         uint   `gorm:"not null;index;column:user_id" json:"user_id"`
	PatientID      uint   `gorm:"not null;index;column:patient_id" json:"patient_id"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
