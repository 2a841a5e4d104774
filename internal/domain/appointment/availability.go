package appointment

import "time"

const (
	CodeSlotUnavailable = "slot_unavailable"
	CodeInvalidState    = "invalid_state"

	UnavailableMessage = "Horário indisponível para este barbeiro."
)

// Slot identifica um horário reservável: barbeiro + instante exato.
type Slot struct {
	BarberID uint
	At       time.Time
}

// NewSlot normaliza o instante para UTC com precisão de microssegundo,
// a mesma do timestamp do Postgres, para que a comparação exata funcione.
func NewSlot(barberID uint, at time.Time) Slot {
	return Slot{BarberID: barberID, At: NormalizeTime(at)}
}

func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

func Available() AvailabilityResult {
	return AvailabilityResult{Available: true}
}

func Unavailable() AvailabilityResult {
	return AvailabilityResult{Available: false, Message: UnavailableMessage}
}
