package dto

// CreateDocumentRequest is assembled from a multipart form; Content holds
// the fully buffered file part.
type CreateDocumentRequest struct {
	Type        string `json:"type" validate:"required"`
	Name        string `json:"name" validate:"required"`
	UploadDate  string `json:"upload_date"`
	Description string `json:"description" validate:"required"`
	PatientID   uint   `json:"patient_id" validate:"required"`
	Content     []byte `json:"-"`
}

// UpdateDocumentRequest is assembled from a multipart form; an absent file
// part leaves the stored content untouched.
type UpdateDocumentRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	UploadDate  string `json:"upload_date"`
	Description string `json:"description"`
	PatientID   uint   `json:"patient_id"`
	Content     []byte `json:"-"`
}

type DocumentResponse struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	UploadDate  string `json:"upload_date"`
	Description string `json:"description"`
	PatientID   uint   `json:"patient_id"`
}

// DocumentListItem is the metadata projection returned by the listing
// endpoint.
type DocumentListItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
