package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Transition move o agendamento para o estado to, carimbando o instante
// correspondente. Devolve invalid_state quando a mudança não é permitida.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
