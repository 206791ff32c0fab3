package converter

import (
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
)

func DocumentToResponse(document *entity.Document) *dto.DocumentResponse {
	if document == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:          document.ID,
		Type:        document.Type,
		Name:        document.Name,
		UploadDate:  document.UploadDate,
		Description: document.Description,
		PatientID:   document.PatientID,
	}
}

func DocumentsToListItems(documents []entity.Document) []dto.DocumentListItem {
	out := make([]dto.DocumentListItem, 0, len(documents))
	for _, d := range documents {
		out = append(out, dto.DocumentListItem{ID: d.ID, Name: d.Name})
	}
	return out
}
