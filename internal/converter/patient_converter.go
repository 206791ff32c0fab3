package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}
	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Surname:   patient.Surname,
		Email:     patient.Email,
		Phone:     patient.Phone,
		BirthDate: patient.BirthDate,
		Alert:     patient.Alert,
		Sex:       patient.Sex,
		WeightKG:  patient.WeightKG,
		Address:   patient.Address,
	}
}

func PatientsToResponse(patients []entity.Patient) []dto.PatientResponse {
	out := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, *PatientToResponse(&patients[i]))
	}
	return out
}
