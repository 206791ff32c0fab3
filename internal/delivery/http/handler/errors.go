package handler

import (
	"errors"
	"net/http"

	"clinica-api/internal/service"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/patch"
	"clinica-api/pkg/response"
)

// respondError maps a usecase failure onto the transport taxonomy: missing
// targets are 404, validation and reference problems are 400, anything
// else is a 500 with the given fallback message.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var fieldErr *patch.FieldError
	var refErr *service.ReferenceError

	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrPatientNotFound),
		errors.Is(err, usecase.ErrAppointmentNotFound),
		errors.Is(err, usecase.ErrConsultationNotFound),
		errors.Is(err, usecase.ErrPrescriptionNotFound),
		errors.Is(err, usecase.ErrDocumentNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, patch.ErrNoFields):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.As(err, &fieldErr):
		response.Error(w, http.StatusBadRequest, fieldErr.Error(), nil)
	case errors.As(err, &refErr):
		response.Error(w, http.StatusBadRequest, refErr.Error(), nil)
	case errors.Is(err, usecase.ErrDeleteConflict):
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
