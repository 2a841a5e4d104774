package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Earning struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"not null;index" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	EarningDate time.Time       `gorm:"not null" json:"earning_date"`
	Value       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"value"`

	SchedulingID *uint        `json:"scheduling_id"`
	Scheduling   *Appointment `gorm:"foreignKey:SchedulingID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
