package repository

import (
	"context"

	"clinica-api/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.User, error)
	FindByID(ctx context.Context, db *gorm.DB, id uint) (*entity.User, error)
	ExistsByID(ctx context.Context, db *gorm.DB, id uint) (bool, error)
	UpdateColumns(ctx context.Context, db *gorm.DB, id uint, columns map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, id uint) error
}
