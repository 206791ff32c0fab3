package patch

import (
	"errors"
	"testing"
)

func TestBuildCollectsNonZeroValues(t *testing.T) {
	columns, err := NewBuilder().
		String("name", "Ana").
		String("surname", "").
		Float("weight_kg", 61.5).
		Uint("patient_id", 3).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %d: %v", len(columns), columns)
	}
	if columns["name"] != "Ana" {
		t.Errorf("expected name Ana, got %v", columns["name"])
	}
	if _, ok := columns["surname"]; ok {
		t.Error("empty string should be treated as omitted")
	}
	if columns["weight_kg"] != 61.5 {
		t.Errorf("expected weight_kg 61.5, got %v", columns["weight_kg"])
	}
	if columns["patient_id"] != uint(3) {
		t.Errorf("expected patient_id 3, got %v", columns["patient_id"])
	}
}

func TestBuildEmptyPayload(t *testing.T) {
	_, err := NewBuilder().
		String("name", "").
		Float("fee", 0).
		Uint("user_id", 0).
		Bytes("content", nil).
		Build()
	if !errors.Is(err, ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestEnumAcceptsAllowedValue(t *testing.T) {
	columns, err := NewBuilder().
		Enum("status", "CANCELADO", []string{"ACTIVO", "CANCELADO"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if columns["status"] != "CANCELADO" {
		t.Errorf("expected status CANCELADO, got %v", columns["status"])
	}
}

func TestEnumRejectsUnknownValue(t *testing.T) {
	_, err := NewBuilder().
		Enum("status", "PENDIENTE", []string{"ACTIVO", "CANCELADO"}).
		Build()

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fieldErr.Field != "status" || fieldErr.Value != "PENDIENTE" {
		t.Errorf("unexpected field error: %v", fieldErr)
	}
}

func TestEnumEmptyValueIsOmitted(t *testing.T) {
	columns, err := NewBuilder().
		Enum("sex", "", []string{"M", "F"}).
		String("name", "Ana").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := columns["sex"]; ok {
		t.Error("empty enum value should be treated as omitted")
	}
}

func TestEnumErrorWinsOverEmptyPayload(t *testing.T) {
	// An invalid enum must be reported even when nothing else was
	// collected, it takes precedence over ErrNoFields.
	_, err := NewBuilder().
		Enum("role", "SUPERADMIN", []string{"MEDICO", "TERAPEUTA", "ADMIN", "DEVOP"}).
		Build()

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
}

func TestEnumErrorStopsTheFold(t *testing.T) {
	b := NewBuilder().
		Enum("status", "BAD", []string{"ACTIVO", "CANCELADO"}).
		String("notes", "later value")

	if b.Err() == nil {
		t.Fatal("expected latched error after invalid enum")
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected Build to fail after invalid enum")
	}
}
