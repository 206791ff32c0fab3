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

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetAllPrescriptions(ctx context.Context) ([]dto.PrescriptionResponse, error)
	GetPrescription(ctx context.Context, id uint) (*dto.PrescriptionResponse, error)
	GetPrescriptionsByPatient(ctx context.Context, patientID uint) ([]dto.PrescriptionResponse, error)
	GetPrescriptionsByConsultation(ctx context.Context, consultationID uint) ([]dto.PrescriptionResponse, error)
	GetPrescriptionsByUser(ctx context.Context, userID uint) ([]dto.PrescriptionResponse, error)
	UpdatePrescription(ctx context.Context, id uint, req *dto.UpdatePrescriptionRequest) error
	DeletePrescription(ctx context.Context, id uint) error
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	refs             service.ReferenceChecker
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	refs service.ReferenceChecker,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		refs:             refs,
	}
}

func (u *prescriptionUsecase) CreatePrescription(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Patient and user are mandatory; the consultation link is checked
	// only when supplied.
	refs := []service.Reference{
		{Kind: service.KindPatient, ID: req.PatientID},
		{Kind: service.KindUser, ID: req.UserID},
	}
	if req.ConsultationID != 0 {
		refs = append(refs, service.Reference{Kind: service.KindConsultation, ID: req.ConsultationID})
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		Content:        req.Content,
		IssueDate:      req.IssueDate,
		ConsultationID: optionalUint(req.ConsultationID),
		UserID:         req.UserID,
		PatientID:      req.PatientID,
	}
	if err := u.prescriptionRepo.Create(ctx, tx, prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetAllPrescriptions(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponse(prescriptions), nil
}

func (u *prescriptionUsecase) GetPrescription(ctx context.Context, id uint) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetPrescriptionsByPatient(ctx context.Context, patientID uint) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions by patient: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponse(prescriptions), nil
}

func (u *prescriptionUsecase) GetPrescriptionsByConsultation(ctx context.Context, consultationID uint) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByConsultationID(ctx, u.db, consultationID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions by consultation: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponse(prescriptions), nil
}

func (u *prescriptionUsecase) GetPrescriptionsByUser(ctx context.Context, userID uint) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions by user: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponse(prescriptions), nil
}

func (u *prescriptionUsecase) UpdatePrescription(ctx context.Context, id uint, req *dto.UpdatePrescriptionRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	prescription, err := u.prescriptionRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	columns, err := patch.NewBuilder().
		String("content", req.Content).
		String("issue_date", req.IssueDate).
		Uint("consultation_id", req.ConsultationID).
		Uint("user_id", req.UserID).
		Uint("patient_id", req.PatientID).
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
	if req.ConsultationID != 0 {
		refs = append(refs, service.Reference{Kind: service.KindConsultation, ID: req.ConsultationID})
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return err
	}

	if err := u.prescriptionRepo.UpdateColumns(ctx, tx, id, columns); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return err
	}
	return tx.Commit().Error
}

func (u *prescriptionUsecase) DeletePrescription(ctx context.Context, id uint) error {
	prescription, err := u.prescriptionRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return err
	}
	if prescription == nil {
		return ErrPrescriptionNotFound
	}

	if err := u.prescriptionRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	return nil
}
