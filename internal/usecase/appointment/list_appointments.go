package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(appointments), nil
}
