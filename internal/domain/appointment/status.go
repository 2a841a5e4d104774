package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// transitions lista os destinos válidos a partir de cada estado.
// cancelled e completed são finais.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) error {
	for _, s := range transitions[from] {
		if s == to {
			return nil
		}
	}
	return httperr.ErrConflict(CodeInvalidState)
}

// InitialStatus resolve o status de criação. Vazio vira scheduled;
// cancelled não ocupa horário e por isso não é aceito na criação.
func InitialStatus(requested string) (Status, error) {
	if requested == "" {
		return StatusScheduled, nil
	}

	s := Status(requested)
	if !s.Valid() || s == StatusCancelled {
		return "", httperr.ErrValidation("invalid_status", httperr.FieldError{Field: "status", Rule: "oneof"})
	}
	return s, nil
}
