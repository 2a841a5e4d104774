package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type EarningGormRepository struct {
	db *gorm.DB
}

func NewEarningGormRepository(db *gorm.DB) *EarningGormRepository {
	return &EarningGormRepository{db: db}
}

func (r *EarningGormRepository) Create(ctx context.Context, e *models.Earning) error {
	return httperr.ErrStorage(r.db.WithContext(ctx).Create(e).Error)
}

// List devolve todos os ganhos, ou só os do barbeiro quando barberID != 0.
func (r *EarningGormRepository) List(ctx context.Context, barberID uint) ([]models.Earning, error) {
	q := r.db.WithContext(ctx)
	if barberID != 0 {
		q = q.Where("barber_id = ?", barberID)
	}

	var earnings []models.Earning
	if err := q.
		Order("earning_date DESC").
		Order("id DESC").
		Find(&earnings).Error; err != nil {
		return nil, httperr.ErrStorage(err)
	}
	return earnings, nil
}
