package repository

import (
	"context"
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(ctx context.Context, db *gorm.DB, document *entity.Document) error {
	return db.WithContext(ctx).Create(document).Error
}

func (r *documentRepository) FindAllMeta(ctx context.Context, db *gorm.DB) ([]entity.Document, error) {
	var documents []entity.Document
	if err := db.WithContext(ctx).Select("id", "name").Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Document, error) {
	var document entity.Document
	err := db.WithContext(ctx).First(&document, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error {
	return db.WithContext(ctx).Model(&entity.Document{}).Where("id = ?", id).Updates(columns).Error
}

func (r *documentRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.Document{}, id).Error
}
