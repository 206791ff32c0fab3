package dto

type CreateConsultationRequest struct {
	DateTime     string  `json:"date_time" validate:"required"`
	MedicalExam  string  `json:"medical_exam"`
	PhysicalExam string  `json:"physical_exam"`
	Diagnosis    string  `json:"diagnosis"`
	Fee          float64 `json:"fee"`
	PatientID    uint    `json:"patient_id" validate:"required"`
	UserID       uint    `json:"user_id" validate:"required"`
}

type UpdateConsultationRequest struct {
	DateTime     string  `json:"date_time"`
	MedicalExam  string  `json:"medical_exam"`
	PhysicalExam string  `json:"physical_exam"`
	Diagnosis    string  `json:"diagnosis"`
	Fee          float64 `json:"fee"`
	PatientID    uint    `json:"patient_id"`
	UserID       uint    `json:"user_id"`
}

type ConsultationResponse struct {
	ID           uint     `json:"id"`
	DateTime     string   `json:"date_time"`
	MedicalExam  string   `json:"medical_exam,omitempty"`
	PhysicalExam string   `json:"physical_exam,omitempty"`
	Diagnosis    string   `json:"diagnosis,omitempty"`
	Fee          *float64 `json:"fee,omitempty"`
	PatientID    uint     `json:"patient_id"`
	UserID       uint     `json:"user_id"`
}
