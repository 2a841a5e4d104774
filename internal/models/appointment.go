package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment guarda o horário em UTC. O índice parcial impede dois
// agendamentos ativos do mesmo barbeiro no mesmo instante.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	BarberID uint `gorm:"not null;uniqueIndex:idx_appointments_barber_slot,where:status <> 'cancelled'" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	AppointmentDate time.Time `gorm:"not null;uniqueIndex:idx_appointments_barber_slot,where:status <> 'cancelled'" json:"appointment_date"`

	Status string          `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Value  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"value"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
