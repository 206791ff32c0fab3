package repository

import (
	"context"

	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, db *gorm.DB, document *entity.Document) error
	// FindAllMeta lists documents without loading their binary content.
	FindAllMeta(ctx context.Context, db *gorm.DB) ([]entity.Document, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Document, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
