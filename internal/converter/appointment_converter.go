package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Status:    appointment.Status,
		Notes:     appointment.Notes,
		LeadTime:  appointment.LeadTime,
		PatientID: appointment.PatientID,
		UserID:    appointment.UserID,
	}
}

func AppointmentsToResponse(appointments []entity.Appointment) []dto.AppointmentResponse {
	out := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, *AppointmentToResponse(&appointments[i]))
	}
	return out
}
