package http

import (
	"net/http"

	"clinica-api/internal/delivery/http/handler"
	"clinica-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	userHandler         *handler.UserHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	consultationHandler *handler.ConsultationHandler
	prescriptionHandler *handler.PrescriptionHandler
	documentHandler     *handler.DocumentHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	userHandler *handler.UserHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	consultationHandler *handler.ConsultationHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	documentHandler *handler.DocumentHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		userHandler:         userHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		consultationHandler: consultationHandler,
		prescriptionHandler: prescriptionHandler,
		documentHandler:     documentHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/patient/{id}", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Consultations
	api.HandleFunc("/consultations", r.consultationHandler.GetAllConsultations).Methods(http.MethodGet)
	api.HandleFunc("/consultations", r.consultationHandler.CreateConsultation).Methods(http.MethodPost)
	api.HandleFunc("/consultations/patient/{id}", r.consultationHandler.GetConsultationsByPatient).Methods(http.MethodGet)
	api.HandleFunc("/consultations/{id}", r.consultationHandler.GetConsultation).Methods(http.MethodGet)
	api.HandleFunc("/consultations/{id}", r.consultationHandler.UpdateConsultation).Methods(http.MethodPut)
	api.HandleFunc("/consultations/{id}", r.consultationHandler.DeleteConsultation).Methods(http.MethodDelete)

	// Prescriptions
	api.HandleFunc("/prescriptions", r.prescriptionHandler.GetAllPrescriptions).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	api.HandleFunc("/prescriptions/patient/{id}", r.prescriptionHandler.GetPrescriptionsByPatient).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/consultation/{id}", r.prescriptionHandler.GetPrescriptionsByConsultation).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/user/{id}", r.prescriptionHandler.GetPrescriptionsByUser).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.UpdatePrescription).Methods(http.MethodPut)
	api.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.DeletePrescription).Methods(http.MethodDelete)

	// Documents
	api.HandleFunc("/documents", r.documentHandler.GetAllDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents", r.documentHandler.CreateDocument).Methods(http.MethodPost)
	api.HandleFunc("/documents/{id}/download", r.documentHandler.DownloadDocument).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id}", r.documentHandler.GetDocument).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id}", r.documentHandler.UpdateDocument).Methods(http.MethodPut)
	api.HandleFunc("/documents/{id}", r.documentHandler.DeleteDocument).Methods(http.MethodDelete)

	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
