package usecase

import (
	"context"

	"clinica-api/internal/converter"
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
	"clinica-api/internal/domain/repository"
	"clinica-api/internal/service"
	"clinica-api/pkg/patch"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error)
	GetAllConsultations(ctx context.Context) ([]dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error)
	GetConsultationsByPatient(ctx context.Context, patientID uint) ([]dto.ConsultationResponse, error)
	UpdateConsultation(ctx context.Context, id uint, req *dto.UpdateConsultationRequest) error
	DeleteConsultation(ctx context.Context, id uint) error
}

type consultationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	prescriptionRepo repository.PrescriptionRepository
	refs             service.ReferenceChecker
}

func NewConsultationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	prescriptionRepo repository.PrescriptionRepository,
	refs service.ReferenceChecker,
) ConsultationUsecase {
	return &consultationUsecase{
		db:               db,
		log:              log,
		consultationRepo: consultationRepo,
		prescriptionRepo: prescriptionRepo,
		refs:             refs,
	}
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, req *dto.CreateConsultationRequest) (*dto.ConsultationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	refs := []service.Reference{
		{Kind: service.KindPatient, ID: req.PatientID},
		{Kind: service.KindUser, ID: req.UserID},
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return nil, err
	}

	consultation := &entity.Consultation{
		DateTime:     req.DateTime,
		MedicalExam:  req.MedicalExam,
		PhysicalExam: req.PhysicalExam,
		Diagnosis:    req.Diagnosis,
		Fee:          optionalFloat(req.Fee),
		PatientID:    req.PatientID,
		UserID:       req.UserID,
	}
	if err := u.consultationRepo.Create(ctx, tx, consultation); err != nil {
		u.log.Warnf("Failed to create consultation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetAllConsultations(ctx context.Context) ([]dto.ConsultationResponse, error) {
	consultations, err := u.consultationRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list consultations: %+v", err)
		return nil, err
	}
	return converter.ConsultationsToResponse(consultations), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}
	return converter.ConsultationToResponse(consultation), nil
}

func (u *consultationUsecase) GetConsultationsByPatient(ctx context.Context, patientID uint) ([]dto.ConsultationResponse, error) {
	consultations, err := u.consultationRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list consultations by patient: %+v", err)
		return nil, err
	}
	return converter.ConsultationsToResponse(consultations), nil
}

func (u *consultationUsecase) UpdateConsultation(ctx context.Context, id uint, req *dto.UpdateConsultationRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.consultationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return err
	}
	if consultation == nil {
		return ErrConsultationNotFound
	}

	columns, err := patch.NewBuilder().
		String("date_time", req.DateTime).
		String("medical_exam", req.MedicalExam).
		String("physical_exam", req.PhysicalExam).
		String("diagnosis", req.Diagnosis).
		Float("fee", req.Fee).
		Uint("patient_id", req.PatientID).
		Uint("user_id", req.UserID).
		Build()
	if err != nil {
		return err
	}

	var refs []service.Reference
	if req.PatientID != 0 {
		refs = append(refs, service.Reference{Kind: service.KindPatient, ID: req.PatientID})
	}
	if req.UserID != 0 {
		refs = append(refs, service.Reference{Kind: service.KindUser, ID: req.UserID})
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return err
	}

	if err := u.consultationRepo.UpdateColumns(ctx, tx, id, columns); err != nil {
		u.log.Warnf("Failed to update consultation: %+v", err)
		return err
	}
	return tx.Commit().Error
}

// DeleteConsultation removes the consultation together with its
// prescriptions, as one unit.
func (u *consultationUsecase) DeleteConsultation(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	consultation, err := u.consultationRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return err
	}
	if consultation == nil {
		return ErrConsultationNotFound
	}

	// Dependent prescriptions go first so the consultation row is free to
	// be removed.
	if err := u.prescriptionRepo.DeleteByConsultationID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete consultation prescriptions: %+v", err)
		return err
	}
	if err := u.consultationRepo.Delete(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete consultation: %+v", err)
		return err
	}
	return tx.Commit().Error
}
