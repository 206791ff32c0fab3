package repository

import (
	"context"

	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Patient, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
