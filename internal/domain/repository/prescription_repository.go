package repository

import (
	"context"

	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Prescription, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Prescription, error)
	FindByConsultationID(ctx context.Context, db *gorm.DB, consultationID uint) ([]entity.Prescription, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uint) ([]entity.Prescription, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
	DeleteByConsultationID(ctx context.Context, db *gorm.DB, consultationID uint) error
}
