package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrConsultationNotFound = errors.New("consultation not found")
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrDocumentNotFound     = errors.New("document not found")

	// ErrDeleteConflict is the store-reported dependency violation on a
	// delete, translated for the client.
	ErrDeleteConflict = errors.New("cannot delete: referenced by other records")
)

// isDependencyViolation checks if the error is a PostgreSQL foreign key
// violation, meaning other rows still reference the delete target.
func isDependencyViolation(err error) bool {
	var pgErr *pgconn.PgError
	// PostgreSQL error code 23503 = foreign_key_violation
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func optionalUint(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}
