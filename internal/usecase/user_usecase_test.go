package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"clinica-api/internal/delivery/dto"
	"clinica-api/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// stubUserRepository lets the tests script repository behavior without a
// database connection.
type stubUserRepository struct {
	created   *entity.User
	findByID  *entity.User
	deleteErr error
}

func (s *stubUserRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	s.created = user
	return nil
}

func (s *stubUserRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error) {
	return nil, nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.User, error) {
	return s.findByID, nil
}

func (s *stubUserRepository) ExistsByID(ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	return s.findByID != nil, nil
}

func (s *stubUserRepository) UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error {
	return nil
}

func (s *stubUserRepository) Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return s.deleteErr
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := &stubUserRepository{}
	uc := NewUserUsecase(nil, silentLogger(), repo)

	resp, err := uc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name:     "Carlos",
		Surname:  "Ruiz",
		Email:    "carlos@clinica.test",
		Role:     entity.RoleMedico,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.created == nil {
		t.Fatal("expected user to be passed to the repository")
	}
	if repo.created.PasswordHash == "secret123" {
		t.Fatal("password must not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}
	if resp.Name != "Carlos" || resp.Role != entity.RoleMedico {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestDeleteUserTranslatesDependencyViolation(t *testing.T) {
	repo := &stubUserRepository{
		findByID:  &entity.User{ID: 1, Name: "Carlos"},
		deleteErr: &pgconn.PgError{Code: "23503"},
	}
	uc := NewUserUsecase(nil, silentLogger(), repo)

	err := uc.DeleteUser(context.Background(), 1)
	if !errors.Is(err, ErrDeleteConflict) {
		t.Fatalf("expected ErrDeleteConflict, got %v", err)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	uc := NewUserUsecase(nil, silentLogger(), &stubUserRepository{})

	err := uc.DeleteUser(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	uc := NewUserUsecase(nil, silentLogger(), &stubUserRepository{})

	_, err := uc.GetUser(context.Background(), 99)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
