package entity

import "testing"

func TestDocumentContentType(t *testing.T) {
	tests := []struct {
		docType string
		want    string
	}{
		{"pdf", "application/pdf"},
		{"jpg", "image/jpeg"},
		{"jpeg", "image/jpeg"},
		{"png", "image/png"},
		{"doc", "application/msword"},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"PDF", "application/pdf"},
		{"zip", "application/octet-stream"},
		{"", "application/octet-stream"},
	}

	for _, tt := range tests {
		d := &Document{Type: tt.docType}
		if got := d.ContentType(); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.docType, got, tt.want)
		}
	}
}
