package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) Create(ctx context.Context, s *models.Service) error {
	return httperr.ErrStorage(r.db.WithContext(ctx).Create(s).Error)
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return services, nil
}
