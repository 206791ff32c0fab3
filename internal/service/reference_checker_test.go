package service

import (
	"context"
	"errors"
	"testing"

	"clinica-api/internal/domain/entity"
	"clinica-api/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.User{}, &entity.Patient{}, &entity.Consultation{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func newChecker() ReferenceChecker {
	return NewReferenceChecker(
		repository.NewPatientRepository(),
		repository.NewUserRepository(),
		repository.NewConsultationRepository(),
	)
}

func TestCheckResolvesExistingReferences(t *testing.T) {
	db := newTestDB(t)
	checker := newChecker()

	patient := &entity.Patient{Name: "Ana", Surname: "Lopez"}
	user := &entity.User{Name: "Carlos", Surname: "Ruiz", Email: "c@x", Role: entity.RoleMedico, PasswordHash: "h"}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	err := checker.Check(context.Background(), db, []Reference{
		{Kind: KindPatient, ID: patient.ID},
		{Kind: KindUser, ID: user.ID},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckReportsFirstMiss(t *testing.T) {
	db := newTestDB(t)
	checker := newChecker()

	// Both references are bad; the first one in submission order is the
	// one reported.
	err := checker.Check(context.Background(), db, []Reference{
		{Kind: KindPatient, ID: 7},
		{Kind: KindUser, ID: 9},
	})

	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Kind != KindPatient || refErr.ID != 7 {
		t.Errorf("expected patient 7 to be reported, got %s %d", refErr.Kind, refErr.ID)
	}
	if got := refErr.Error(); got != "patient 7 does not exist" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestCheckUnknownConsultation(t *testing.T) {
	db := newTestDB(t)
	checker := newChecker()

	patient := &entity.Patient{Name: "Ana", Surname: "Lopez"}
	user := &entity.User{Name: "Carlos", Surname: "Ruiz", Email: "c@x", Role: entity.RoleMedico, PasswordHash: "h"}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	err := checker.Check(context.Background(), db, []Reference{
		{Kind: KindPatient, ID: patient.ID},
		{Kind: KindUser, ID: user.ID},
		{Kind: KindConsultation, ID: 42},
	})

	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError, got %v", err)
	}
	if refErr.Kind != KindConsultation || refErr.ID != 42 {
		t.Errorf("expected consultation 42 to be reported, got %s %d", refErr.Kind, refErr.ID)
	}
}
