package dto

type CreatePrescriptionRequest struct {
	Content        string `json:"content" validate:"required"`
	IssueDate      string `json:"issue_date" validate:"required"`
	ConsultationID uint   `json:"consultation_id"`
	UserID         uint   `json:"user_id" validate:"required"`
	PatientID      uint   `json:"patient_id" validate:"required"`
}

type UpdatePrescriptionRequest struct {
	Content        string `json:"content"`
	IssueDate      string `json:"issue_date"`
	ConsultationID uint   `json:"consultation_id"`
	UserID         uint   `json:"user_id"`
	PatientID      uint   `json:"patient_id"`
}

type PrescriptionResponse struct {
	ID             uint   `json:"id"`
	Content        string `json:"content"`
	IssueDate      string `json:"issue_date"`
	ConsultationID *uint  `json:"consultation_id,omitempty"`
	UserID         uint   `json:"user_id"`
	PatientID      uint   `json:"patient_id"`
}
