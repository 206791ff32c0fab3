package dto

type CreateAppointmentRequest struct {
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=ACTIVO CANCELADO"`
	Notes     string `json:"notes"`
	LeadTime  string `json:"lead_time" validate:"omitempty,oneof=1D 2D 3D 4D 5D 6D 1SEM"`
	PatientID uint   `json:"patient_id" validate:"required"`
	UserID    uint   `json:"user_id" validate:"required"`
}

type UpdateAppointmentRequest struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	LeadTime  string `json:"lead_time"`
	PatientID uint   `json:"patient_id"`
	UserID    uint   `json:"user_id"`
}

type AppointmentResponse struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes,omitempty"`
	LeadTime  *string `json:"lead_time,omitempty"`
	PatientID uint    `json:"patient_id"`
	UserID    uint    `json:"user_id"`
}
