package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Filter restringe a listagem; campos zerados são ignorados.
type Filter struct {
	ClientID uint
	BarberID uint
}

type Repository interface {
	// -------- References --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------
	IsSlotTaken(
		ctx context.Context,
		slot Slot,
	) (bool, error)

	// -------- Appointment (create / conflict) --------

	// BookSlot verifica e insere na mesma transação. Devolve conflito
	// slot_unavailable quando o horário já está ocupado.
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// ApplyTransition grava status e carimbos de ap somente se o registro
	// ainda estiver em from. Caso contrário devolve conflito invalid_state.
	ApplyTransition(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, error)
}
