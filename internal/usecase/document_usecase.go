package usecase

import (
	"context"
	"time"

	"clinica-api/internal/converter"
	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"
	"clinica-api/internal/domain/repository"
	"clinica-api/internal/service"
	"clinica-api/pkg/patch"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DocumentUsecase interface {
	CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	GetAllDocuments(ctx context.Context) ([]dto.DocumentListItem, error)
	GetDocument(ctx context.Context, id uint) (*dto.DocumentResponse, error)
	// DownloadDocument returns the full entity so the handler can serve the
	// binary with its stored type and name.
	DownloadDocument(ctx context.Context, id uint) (*entity.Document, error)
	UpdateDocument(ctx context.Context, id uint, req *dto.UpdateDocumentRequest) error
	DeleteDocument(ctx context.Context, id uint) error
}

type documentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	documentRepo repository.DocumentRepository
	refs         service.ReferenceChecker
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	documentRepo repository.DocumentRepository,
	refs service.ReferenceChecker,
) DocumentUsecase {
	return &documentUsecase{
		db:           db,
		log:          log,
		documentRepo: documentRepo,
		refs:         refs,
	}
}

func (u *documentUsecase) CreateDocument(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	refs := []service.Reference{
		{Kind: service.KindPatient, ID: req.PatientID},
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return nil, err
	}

	uploadDate := req.UploadDate
	if uploadDate == "" {
		uploadDate = time.Now().Format("2006-01-02")
	}

	document := &entity.Document{
		Type:        req.Type,
		Name:        req.Name,
		UploadDate:  uploadDate,
		Content:     req.Content,
		Description: req.Description,
		PatientID:   req.PatientID,
	}
	if err := u.documentRepo.Create(ctx, tx, document); err != nil {
		u.log.Warnf("Failed to create document: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.DocumentToResponse(document), nil
}

func (u *documentUsecase) GetAllDocuments(ctx context.Context) ([]dto.DocumentListItem, error) {
	documents, err := u.documentRepo.FindAllMeta(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list documents: %+v", err)
		return nil, err
	}
	return converter.DocumentsToListItems(documents), nil
}

func (u *documentUsecase) GetDocument(ctx context.Context, id uint) (*dto.DocumentResponse, error) {
	document, err := u.documentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}
	return converter.DocumentToResponse(document), nil
}

func (u *documentUsecase) DownloadDocument(ctx context.Context, id uint) (*entity.Document, error) {
	document, err := u.documentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}
	return document, nil
}

func (u *documentUsecase) UpdateDocument(ctx context.Context, id uint, req *dto.UpdateDocumentRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	document, err := u.documentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return err
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	columns, err := patch.NewBuilder().
		String("type", req.Type).
		String("name", req.Name).
		String("upload_date", req.UploadDate).
		String("description", req.Description).
		Uint("patient_id", req.PatientID).
		Bytes("content", req.Content).
		Build()
	if err != nil {
		return err
	}

	var refs []service.Reference
	if req.PatientID != 0 {
		refs = append(refs, service.Reference{Kind: service.KindPatient, ID: req.PatientID})
	}
	if err := u.refs.Check(ctx, tx, refs); err != nil {
		return err
	}

	if err := u.documentRepo.UpdateColumns(ctx, tx, id, columns); err != nil {
		u.log.Warnf("Failed to update document: %+v", err)
		return err
	}
	return tx.Commit().Error
}

func (u *documentUsecase) DeleteDocument(ctx context.Context, id uint) error {
	document, err := u.documentRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find document: %+v", err)
		return err
	}
	if document == nil {
		return ErrDocumentNotFound
	}

	if err := u.documentRepo.Delete(ctx, u.db, id); err != nil {
		u.log.Warnf("Failed to delete document: %+v", err)
		return err
	}
	return nil
}
