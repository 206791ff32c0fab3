package entity

// Consultation represents a clinical encounter between a patient and a
// staff member. Deleting a consultation also removes its prescriptions.
type Consultation struct {
	ID           uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	DateTime     string   `gorm:"type:timestamptz;not null;column:date_time" json:"date_time"`
	MedicalExam  string   `gorm:"type:text;column:medical_exam" json:"medical_exam,omitempty"`
	PhysicalExam string   `gorm:"type:text;column:physical_exam" json:"physical_exam,omitempty"`
	Diagnosis    string   `gorm:"type:text" json:"diagnosis,omitempty"`
	Fee          *float64 `gorm:"type:numeric(10,2)" json:"fee,omitempty"`
	PatientID    uint     `gorm:"not null;index;column:patient_id" json:"patient_id"`
	UserID       uint     `gorm:"not null;index;column:user_id" json:"user_id"`
}

func (Consultation) TableName() string {
	return "consultations"
}
