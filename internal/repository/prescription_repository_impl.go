package repository

import (
	"context"
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(ctx context.Context, db *gorm.DB, prescription *entity.Prescription) error {
	return db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	if err := db.WithContext(ctx).Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.WithContext(ctx).First(&prescription, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	if err := db.WithContext(ctx).Where("patient_id = ?", patientID).Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByConsultationID(ctx context.Context, db *gorm.DB, consultationID uint) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	if err := db.WithContext(ctx).Where("consultation_id = ?", consultationID).Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uint) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	if err := db.WithContext(ctx).Where("user_id = ?", userID).Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error {
	return db.WithContext(ctx).Model(&entity.Prescription{}).Where("id = ?", id).Updates(columns).Error
}

func (r *prescriptionRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.Prescription{}, id).Error
}

func (r *prescriptionRepository) DeleteByConsultationID(ctx context.Context, db *gorm.DB, consultationID uint) error {
	return db.WithContext(ctx).Where("consultation_id = ?", consultationID).Delete(&entity.Prescription{}).Error
}
