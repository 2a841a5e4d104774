package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service é um item do catálogo da barbearia (corte, barba...).
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string          `gorm:"size:255;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Duration    int             `gorm:"not null;default:30" json:"duration"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
