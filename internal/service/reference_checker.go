package service

import (
	"context"
	"fmt"

	"clinica-api/internal/domain/repository"

	"gorm.io/gorm"
)

// ReferenceKind names an entity that other records can point at.
type ReferenceKind string

const (
	KindPatient      ReferenceKind = "patient"
	KindUser         ReferenceKind = "user"
	KindConsultation ReferenceKind = "consultation"
)

// Reference is a foreign identifier submitted in a request payload.
type Reference struct {
	Kind ReferenceKind
	ID   uint
}

// ReferenceError reports the first submitted reference that did not
// resolve to an existing row.
type ReferenceError struct {
	Kind ReferenceKind
	ID   uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Kind, e.ID)
}

// ReferenceChecker verifies that submitted references resolve before a
// dependent write proceeds. Callers pass the transaction handle the write
// will run on, so check and write share one transaction.
type ReferenceChecker interface {
	Check(ctx context.Context, db *gorm.DB, refs []Reference) error
}

type referenceChecker struct {
	patientRepo      repository.PatientRepository
	userRepo         repository.UserRepository
	consultationRepo repository.ConsultationRepository
}

func NewReferenceChecker(
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	consultationRepo repository.ConsultationRepository,
) ReferenceChecker {
	return &referenceChecker{
		patientRepo:      patientRepo,
		userRepo:         userRepo,
		consultationRepo: consultationRepo,
	}
}

// Check resolves each reference in the given order and stops at the first
// miss. The checks are independent; order only decides which failure is
// reported when several references are bad.
func (c *referenceChecker) Check(ctx context.Context, db *gorm.DB, refs []Reference) error {
	for _, ref := range refs {
		var (
			exists bool
			err    error
		)
		switch ref.Kind {
		case KindPatient:
			exists, err = c.patientRepo.ExistsByID(ctx, db, ref.ID)
		case KindUser:
			exists, err = c.userRepo.ExistsByID(ctx, db, ref.ID)
		case KindConsultation:
			exists, err = c.consultationRepo.ExistsByID(ctx, db, ref.ID)
		default:
			return fmt.Errorf("unknown reference kind %q", ref.Kind)
		}
		if err != nil {
			return err
		}
		if !exists {
			return &ReferenceError{Kind: ref.Kind, ID: ref.ID}
		}
	}
	return nil
}
