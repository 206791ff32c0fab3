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

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) error
	DeleteAppointment(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	refs            service.ReferenceChecker
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	refs service.ReferenceChecker,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		refs:            refs,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	refs := []service.Reference{
		{Kind: service.KindPatient, ID: req.PatientID},
		{Kind: service.KindUser, ID: req.UserID},
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		Date:      req.Date,
		Time:      req.Time,
		Status:    req.Status,
		Notes:     req.Notes,
		LeadTime:  optionalString(req.LeadTime),
		PatientID: req.PatientID,
		UserID:    req.UserID,
	}
	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments by patient: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponse(appointments), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	columns, err := patch.NewBuilder().
		String("date", req.Date).
		String("time", req.Time).
		Enum("status", req.Status, entity.AppointmentStatuses).
		String("notes", req.Notes).
		Enum("lead_time", req.LeadTime, entity.LeadTimes).
		Uint("patient_id", req.PatientID).
		Uint("user_id", req.UserID).
		Build()
	if err != nil {
		return err
	}

	// Only references included in this update get checked.
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

	if err := u.appointmentRepo.UpdateColumns(ctx, tx, id, columns); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return err
	}
	return tx.Commit().Error
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.appointmentRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	return nil
}
