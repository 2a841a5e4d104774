package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("email_already_exists")
	}
	return httperr.ErrStorage(err)
}

func (r *UserGormRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, notFoundOr(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) List(ctx context.Context, userType domain.Type) ([]models.User, error) {
	q := r.db.WithContext(ctx)
	if userType != "" {
		q = q.Where("type = ?", string(userType))
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return users, nil
}

var _ domain.Repository = (*UserGormRepository)(nil)
