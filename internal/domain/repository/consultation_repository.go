package repository

import (
	"context"

	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Consultation, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Consultation, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Consultation, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
