package repository

import (
	"context"
	"errors"

	"clinica-api/internal/domain/entity"
	domainRepo "clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(ctx context.Context, db *gorm.DB, consultation *entity.Consultation) error {
	return db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	if err := db.WithContext(ctx).Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.WithContext(ctx).First(&consultation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID uint) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	if err := db.WithContext(ctx).Where("patient_id = ?", patientID).Find(&consultations).Error; err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) ExistsByID(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Consultation{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *consultationRepository) UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error {
	return db.WithContext(ctx).Model(&entity.Consultation{}).Where("id = ?", id).Updates(columns).Error
}

func (r *consultationRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Delete(&entity.Consultation{}, id).Error
}
