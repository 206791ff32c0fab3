package repository

import (
	"context"

	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Appointment, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Appointment, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
