package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}
	return &dto.PrescriptionResponse{
		ID:             prescription.ID,
		Content:        prescription.Content,
		IssueDate:      prescription.IssueDate,
		ConsultationID: prescription.ConsultationID,
		UserID:         prescription.UserID,
		PatientID:      prescription.PatientID,
	}
}

func PrescriptionsToResponse(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	out := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for i := range prescriptions {
		out = append(out, *PrescriptionToResponse(&prescriptions[i]))
	}
	return out
}
