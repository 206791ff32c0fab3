package entity

import "strings"

// contentTypes maps a stored document type to the content type used when
// the binary is served back.
var contentTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Document represents an uploaded file attached to a patient. The binary
// content is held in the row itself.
type Document struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type        string `gorm:"type:varchar(20);not null" json:"type"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	UploadDate  string `gorm:"type:date;not null;column:upload_date" json:"upload_date"`
	Content     []byte `gorm:"type:bytea;not null" json:"-"`
	Description string `gorm:"type:text;not null" json:"description"`
	PatientID   uint   `gorm:"not null;index;column:patient_id" json:"patient_id"`
}

func (Document) TableName() string {
	return "documents"
}

// ContentType resolves the stored type to a transport content type,
// falling back to a generic binary type for anything unknown.
func (d *Document) ContentType() string {
	if ct, ok := contentTypes[strings.ToLower(d.Type)]; ok {
		return ct
	}
	return "application/octet-stream"
}
