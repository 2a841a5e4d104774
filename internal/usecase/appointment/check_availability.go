package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
)

type CheckAvailabilityInput struct {
	BarberID        uint
	AppointmentDate time.Time
}

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute compara o instante exato, sem sobreposição por duração do serviço.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (domain.AvailabilityResult, error) {

	var missing []httperr.FieldError
	if in.BarberID == 0 {
		missing = append(missing, httperr.FieldError{Field: "barber_id", Rule: "required"})
	}
	if in.AppointmentDate.IsZero() {
		missing = append(missing, httperr.FieldError{Field: "appointment_date", Rule: "required"})
	}
	if len(missing) > 0 {
		return domain.AvailabilityResult{}, httperr.ErrValidation("invalid_request", missing...)
	}

	taken, err := uc.repo.IsSlotTaken(ctx, domain.NewSlot(in.BarberID, in.AppointmentDate))
	if err != nil {
		return domain.AvailabilityResult{}, err
	}

	metrics.ObserveAvailability(!taken)

	if taken {
		return domain.Unavailable(), nil
	}
	return domain.Available(), nil
}
