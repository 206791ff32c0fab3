package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/usecase"
	"clinica-api/pkg/response"
	"clinica-api/pkg/validator"
)

// maxUploadSize bounds the in-memory portion of a multipart upload.
const maxUploadSize = 32 << 20

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
	validator       *validator.CustomValidator
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, validator *validator.CustomValidator) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
		validator:       validator,
	}
}

// readFilePart buffers the uploaded file part fully in memory. A missing
// part yields (nil, nil) so callers can decide whether it is mandatory.
func readFilePart(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("document")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func parseFormID(r *http.Request, field string) (uint, error) {
	raw := r.FormValue(field)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	patientID, err := parseFormID(r, "patient_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	req := dto.CreateDocumentRequest{
		Type:        r.FormValue("type"),
		Name:        r.FormValue("name"),
		UploadDate:  r.FormValue("upload_date"),
		Description: r.FormValue("description"),
		PatientID:   patientID,
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	content, err := readFilePart(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document file", nil)
		return
	}
	if len(content) == 0 {
		response.Error(w, http.StatusBadRequest, "Missing document file", nil)
		return
	}
	req.Content = content

	document, err := h.documentUsecase.CreateDocument(r.Context(), &req)
	if err != nil {
		respondError(w, err, "Failed to create document")
		return
	}

	response.Success(w, http.StatusCreated, "Document created successfully", document)
}

func (h *DocumentHandler) GetAllDocuments(w http.ResponseWriter, r *http.Request) {
	documents, err := h.documentUsecase.GetAllDocuments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	document, err := h.documentUsecase.GetDocument(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to get document")
		return
	}

	response.Success(w, http.StatusOK, "Document retrieved successfully", document)
}

// DownloadDocument streams the stored binary back with the content type
// derived from the stored type. The stored name goes into the disposition
// header as-is; names are not constrained at write time.
func (h *DocumentHandler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	document, err := h.documentUsecase.DownloadDocument(r.Context(), id)
	if err != nil {
		respondError(w, err, "Failed to download document")
		return
	}

	w.Header().Set("Content-Type", document.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, document.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(document.Content)
}

func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	patientID, err := parseFormID(r, "patient_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	content, err := readFilePart(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document file", nil)
		return
	}

	req := dto.UpdateDocumentRequest{
		Type:        r.FormValue("type"),
		Name:        r.FormValue("name"),
		UploadDate:  r.FormValue("upload_date"),
		Description: r.FormValue("description"),
		PatientID:   patientID,
		Content:     content,
	}

	if err := h.documentUsecase.UpdateDocument(r.Context(), id, &req); err != nil {
		respondError(w, err, "Failed to update document")
		return
	}

	response.Success(w, http.StatusOK, "Document updated successfully", nil)
}

func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	if err := h.documentUsecase.DeleteDocument(r.Context(), id); err != nil {
		respondError(w, err, "Failed to delete document")
		return
	}

	response.Success(w, http.StatusOK, "Document deleted successfully", nil)
}
