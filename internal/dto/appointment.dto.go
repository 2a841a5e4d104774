package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentDTO struct {
	ID              uint            `json:"id"`
	ClientID        uint            `json:"client_id"`
	BarberID        uint            `json:"barber_id"`
	ServiceID       uint            `json:"service_id"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Status          string          `json:"status"`
	Value           decimal.Decimal `json:"value"`
	CancelledAt     *time.Time      `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		ClientID:        ap.ClientID,
		BarberID:        ap.BarberID,
		ServiceID:       ap.ServiceID,
		AppointmentDate: ap.AppointmentDate,
		Status:          ap.Status,
		Value:           ap.Value,
		CancelledAt:     ap.CancelledAt,
		CompletedAt:     ap.CompletedAt,
		CreatedAt:       ap.CreatedAt,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, FromAppointment(&aps[i]))
	}
	return out
}
