package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarberEarningsDTO struct {
	BarberID uint             `json:"barber_id"`
	Total    decimal.Decimal  `json:"total"`
	Count    int              `json:"count"`
	Earnings []models.Earning `json:"earnings"`
}

// FromBarberEarnings soma em memória com decimal para não depender do
// tipo devolvido pelo SUM do banco.
func FromBarberEarnings(barberID uint, earnings []models.Earning) BarberEarningsDTO {
	if earnings == nil {
		earnings = []models.Earning{}
	}

	total := decimal.Zero
	for _, e := range earnings {
		total = total.Add(e.Value)
	}

	return BarberEarningsDTO{
		BarberID: barberID,
		Total:    total,
		Count:    len(earnings),
		Earnings: earnings,
	}
}
