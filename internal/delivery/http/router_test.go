package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinica-api/internal/delivery/http/handler"
	"clinica-api/internal/delivery/http/middleware"
	"clinica-api/internal/domain/entity"
	"clinica-api/internal/repository"
	"clinica-api/internal/service"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the full stack against an in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	// A single connection keeps every session on the same in-memory store.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Appointment{},
		&entity.Consultation{},
		&entity.Prescription{},
		&entity.Document{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	consultationRepo := repository.NewConsultationRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	documentRepo := repository.NewDocumentRepository()

	refChecker := service.NewReferenceChecker(patientRepo, userRepo, consultationRepo)

	router := NewRouter(
		handler.NewUserHandler(usecase.NewUserUsecase(db, log, userRepo), customValidator),
		handler.NewPatientHandler(usecase.NewPatientUsecase(db, log, patientRepo), customValidator),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(db, log, appointmentRepo, refChecker), customValidator),
		handler.NewConsultationHandler(usecase.NewConsultationUsecase(db, log, consultationRepo, prescriptionRepo, refChecker), customValidator),
		handler.NewPrescriptionHandler(usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, refChecker), customValidator),
		handler.NewDocumentHandler(usecase.NewDocumentUsecase(db, log, documentRepo, refChecker), customValidator),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, env
}

func createUser(t *testing.T, baseURL string) uint {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, baseURL+"/api/v1/users", map[string]interface{}{
		"name":     "Carlos",
		"surname":  "Ruiz",
		"email":    "carlos@clinica.test",
		"role":     "MEDICO",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating user, got %d: %s", resp.StatusCode, env.Message)
	}
	var user struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("failed to decode user: %v", err)
	}
	return user.ID
}

func createPatient(t *testing.T, baseURL string) uint {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, baseURL+"/api/v1/patients", map[string]interface{}{
		"name":    "Ana",
		"surname": "Lopez",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating patient, got %d: %s", resp.StatusCode, env.Message)
	}
	var patient struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &patient); err != nil {
		t.Fatalf("failed to decode patient: %v", err)
	}
	return patient.ID
}

func TestCreateUserMissingMandatoryField(t *testing.T) {
	server := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/users", map[string]interface{}{
		"name":     "Carlos",
		"email":    "carlos@clinica.test",
		"role":     "MEDICO",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if env.Success {
		t.Error("expected success=false")
	}
}

func TestCreateUserInvalidRole(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/users", map[string]interface{}{
		"name":     "Carlos",
		"surname":  "Ruiz",
		"email":    "carlos@clinica.test",
		"role":     "SUPERADMIN",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUserResponseNeverCarriesPassword(t *testing.T) {
	server := newTestServer(t)
	id := createUser(t, server.URL)

	resp, env := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/v1/users/%d", server.URL, id), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	raw := string(env.Data)
	if strings.Contains(raw, "password") || strings.Contains(raw, "secret123") {
		t.Errorf("password material leaked into response: %s", raw)
	}
}

func TestUpdateUserSingleField(t *testing.T) {
	server := newTestServer(t)
	id := createUser(t, server.URL)

	resp, _ := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/users/%d", server.URL, id), map[string]interface{}{
		"phone": "600111222",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	_, env := doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/v1/users/%d", server.URL, id), nil)
	var user struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("failed to decode user: %v", err)
	}
	if user.Phone != "600111222" {
		t.Errorf("expected phone to be updated, got %q", user.Phone)
	}
	if user.Name != "Carlos" || user.Email != "carlos@clinica.test" {
		t.Errorf("untouched fields changed: %+v", user)
	}
}

func TestUpdateUserInvalidRole(t *testing.T) {
	server := newTestServer(t)
	id := createUser(t, server.URL)

	resp, env := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/users/%d", server.URL, id), map[string]interface{}{
		"role": "SUPERADMIN",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, env.Message)
	}
}

func TestUpdateUserEmptyPayload(t *testing.T) {
	server := newTestServer(t)
	id := createUser(t, server.URL)

	resp, env := doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/users/%d", server.URL, id), map[string]interface{}{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, env.Message)
	}
	if !strings.Contains(env.Message, "no fields") {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestCreatePatientWithoutOptionalFields(t *testing.T) {
	server := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/patients", map[string]interface{}{
		"name":    "Ana",
		"surname": "Lopez",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, env.Message)
	}

	var patient map[string]interface{}
	if err := json.Unmarshal(env.Data, &patient); err != nil {
		t.Fatalf("failed to decode patient: %v", err)
	}
	if _, ok := patient["sex"]; ok {
		t.Error("sex should be absent when never supplied")
	}
	if _, ok := patient["birth_date"]; ok {
		t.Error("birth_date should be absent when never supplied")
	}
}

func TestCreatePatientInvalidSex(t *testing.T) {
	server := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/patients", map[string]interface{}{
		"name":    "Ana",
		"surname": "Lopez",
		"sex":     "X",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	server := newTestServer(t)
	userID := createUser(t, server.URL)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/appointments", map[string]interface{}{
		"date":       "2026-09-15",
		"time":       "10:30",
		"status":     "ACTIVO",
		"patient_id": 999,
		"user_id":    userID,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(env.Message, "patient 999 does not exist") {
		t.Errorf("unexpected message: %q", env.Message)
	}

	// The rejected insert must leave nothing behind.
	_, listEnv := doJSON(t, http.MethodGet, server.URL+"/api/v1/appointments", nil)
	var appointments []json.RawMessage
	if err := json.Unmarshal(listEnv.Data, &appointments); err == nil && len(appointments) != 0 {
		t.Errorf("expected no appointments, got %d", len(appointments))
	}
}

func TestCreateAppointmentInvalidStatus(t *testing.T) {
	server := newTestServer(t)
	userID := createUser(t, server.URL)
	patientID := createPatient(t, server.URL)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/v1/appointments", map[string]interface{}{
		"date":       "2026-09-15",
		"time":       "10:30",
		"status":     "PENDIENTE",
		"patient_id": patientID,
		"user_id":    userID,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestUpdateAppointmentInvalidStatus(t *testing.T) {
	server := newTestServer(t)
	userID := createUser(t, server.URL)
	patientID := createPatient(t, server.URL)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/appointments", map[string]interface{}{
		"date":       "2026-09-15",
		"time":       "10:30",
		"status":     "ACTIVO",
		"patient_id": patientID,
		"user_id":    userID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, env.Message)
	}
	var appointment struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &appointment); err != nil {
		t.Fatalf("failed to decode appointment: %v", err)
	}

	resp, env = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/appointments/%d", server.URL, appointment.ID), map[string]interface{}{
		"status": "PENDIENTE",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, env.Message)
	}
	if !strings.Contains(env.Message, "PENDIENTE") {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestUpdateAppointmentUnknownPatient(t *testing.T) {
	server := newTestServer(t)
	userID := createUser(t, server.URL)
	patientID := createPatient(t, server.URL)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/appointments", map[string]interface{}{
		"date":       "2026-09-15",
		"time":       "10:30",
		"status":     "ACTIVO",
		"patient_id": patientID,
		"user_id":    userID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, env.Message)
	}
	var appointment struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &appointment); err != nil {
		t.Fatalf("failed to decode appointment: %v", err)
	}

	resp, env = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/v1/appointments/%d", server.URL, appointment.ID), map[string]interface{}{
		"patient_id": 999,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, env.Message)
	}
	if !strings.Contains(env.Message, "patient 999 does not exist") {
		t.Errorf("unexpected message: %q", env.Message)
	}

	// The rejected update must leave the row untouched.
	_, env = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/v1/appointments/%d", server.URL, appointment.ID), nil)
	var stored struct {
		PatientID uint `json:"patient_id"`
	}
	if err := json.Unmarshal(env.Data, &stored); err != nil {
		t.Fatalf("failed to decode appointment: %v", err)
	}
	if stored.PatientID != patientID {
		t.Errorf("expected patient_id %d to survive the rejected update, got %d", patientID, stored.PatientID)
	}
}

func TestDeleteConsultationCascadesPrescriptions(t *testing.T) {
	server := newTestServer(t)
	userID := createUser(t, server.URL)
	patientID := createPatient(t, server.URL)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/consultations", map[string]interface{}{
		"date_time":  "2026-09-15T10:30:00Z",
		"diagnosis":  "Lumbalgia",
		"patient_id": patientID,
		"user_id":    userID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating consultation, got %d: %s", resp.StatusCode, env.Message)
	}
	var consultation struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &consultation); err != nil {
		t.Fatalf("failed to decode consultation: %v", err)
	}

	resp, env = doJSON(t, http.MethodPost, server.URL+"/api/v1/prescriptions", map[string]interface{}{
		"content":         "Ibuprofeno 600mg cada 8 horas",
		"issue_date":      "2026-09-15",
		"consultation_id": consultation.ID,
		"patient_id":      patientID,
		"user_id":         userID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating prescription, got %d: %s", resp.StatusCode, env.Message)
	}
	var prescription struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &prescription); err != nil {
		t.Fatalf("failed to decode prescription: %v", err)
	}

	resp, env = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/consultations/%d", server.URL, consultation.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 deleting consultation, got %d: %s", resp.StatusCode, env.Message)
	}

	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/v1/consultations/%d", server.URL, consultation.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected deleted consultation to be gone, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/v1/prescriptions/%d", server.URL, prescription.ID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected cascaded prescription to be gone, got %d", resp.StatusCode)
	}
}

func TestCreatePrescriptionUnknownConsultation(t *testing.T) {
	server := newTestServer(t)
	userID := createUser(t, server.URL)
	patientID := createPatient(t, server.URL)

	resp, env := doJSON(t, http.MethodPost, server.URL+"/api/v1/prescriptions", map[string]interface{}{
		"content":         "Paracetamol 1g",
		"issue_date":      "2026-09-15",
		"consultation_id": 42,
		"patient_id":      patientID,
		"user_id":         userID,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(env.Message, "consultation 42 does not exist") {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func uploadDocument(t *testing.T, baseURL string, patientID uint, docType, name string, content []byte) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("type", docType)
	writer.WriteField("name", name)
	writer.WriteField("description", "Informe de resonancia")
	writer.WriteField("patient_id", fmt.Sprintf("%d", patientID))
	part, err := writer.CreateFormFile("document", name)
	if err != nil {
		t.Fatalf("failed to create file part: %v", err)
	}
	part.Write(content)
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/documents", &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp, env
}

func TestDocumentUploadAndDownload(t *testing.T) {
	server := newTestServer(t)
	patientID := createPatient(t, server.URL)

	content := []byte("%PDF-1.4 fake report body")
	resp, env := uploadDocument(t, server.URL, patientID, "pdf", "informe.pdf", content)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, env.Message)
	}
	var document struct {
		ID         uint   `json:"id"`
		UploadDate string `json:"upload_date"`
	}
	if err := json.Unmarshal(env.Data, &document); err != nil {
		t.Fatalf("failed to decode document: %v", err)
	}
	if document.UploadDate == "" {
		t.Error("upload_date should default to the current day when omitted")
	}

	downloadResp, err := http.Get(fmt.Sprintf("%s/api/v1/documents/%d/download", server.URL, document.ID))
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	defer downloadResp.Body.Close()

	if downloadResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", downloadResp.StatusCode)
	}
	if ct := downloadResp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if cd := downloadResp.Header.Get("Content-Disposition"); !strings.Contains(cd, `filename="informe.pdf"`) {
		t.Errorf("unexpected disposition: %q", cd)
	}
	body, err := io.ReadAll(downloadResp.Body)
	if err != nil {
		t.Fatalf("failed to read download body: %v", err)
	}
	if !bytes.Equal(body, content) {
		t.Error("downloaded bytes differ from the uploaded content")
	}
}

func TestCreateDocumentMissingFile(t *testing.T) {
	server := newTestServer(t)
	patientID := createPatient(t, server.URL)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("type", "pdf")
	writer.WriteField("name", "informe.pdf")
	writer.WriteField("description", "Informe sin fichero")
	writer.WriteField("patient_id", fmt.Sprintf("%d", patientID))
	writer.Close()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/v1/documents", &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDocumentListingOmitsContent(t *testing.T) {
	server := newTestServer(t)
	patientID := createPatient(t, server.URL)

	resp, env := uploadDocument(t, server.URL, patientID, "pdf", "informe.pdf", []byte("payload"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.StatusCode, env.Message)
	}

	_, listEnv := doJSON(t, http.MethodGet, server.URL+"/api/v1/documents", nil)
	var items []map[string]interface{}
	if err := json.Unmarshal(listEnv.Data, &items); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if _, ok := items[0]["content"]; ok {
		t.Error("listing must not carry the binary content")
	}
	if items[0]["name"] != "informe.pdf" {
		t.Errorf("unexpected listing item: %v", items[0])
	}
}

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestNotFoundOnMissingResources(t *testing.T) {
	server := newTestServer(t)

	paths := []string{
		"/api/v1/users/99",
		"/api/v1/patients/99",
		"/api/v1/appointments/99",
		"/api/v1/consultations/99",
		"/api/v1/prescriptions/99",
		"/api/v1/documents/99",
	}
	for _, path := range paths {
		resp, _ := doJSON(t, http.MethodGet, server.URL+path, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, resp.StatusCode)
		}
	}
}
