package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
)

func ConsultationToResponse(consultation *entity.Consultation) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}
	return &dto.ConsultationResponse{
		ID:           consultation.ID,
		DateTime:     consultation.DateTime,
		MedicalExam:  consultation.MedicalExam,
		PhysicalExam: consultation.PhysicalExam,
		Diagnosis:    consultation.Diagnosis,
		Fee:          consultation.Fee,
		PatientID:    consultation.PatientID,
		UserID:       consultation.UserID,
	}
}

func ConsultationsToResponse(consultations []entity.Consultation) []dto.ConsultationResponse {
	out := make([]dto.ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		out = append(out, *ConsultationToResponse(&consultations[i]))
	}
	return out
}
