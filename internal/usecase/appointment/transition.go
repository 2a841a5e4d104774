package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// statusChange é a base comum de cancelar e concluir.
type statusChange struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	to     domain.Status
	action string
}

func (uc statusChange) execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	from := domain.Status(ap.Status)
	if err := domain.Transition(ap, uc.to, timezone.Now()); err != nil {
		return nil, err
	}

	// falha com invalid_state se outra requisição mudou o status depois da leitura
	if err := uc.repo.ApplyTransition(ctx, ap, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   uc.action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"barber_id": ap.BarberID, "from": string(from)},
	})

	return ap, nil
}

// ======================================================
// CANCEL
// ======================================================

type CancelAppointment struct {
	statusChange
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{statusChange{
		repo:   repo,
		audit:  audit,
		to:     domain.StatusCancelled,
		action: "appointment_cancelled",
	}}
}

func (uc *CancelAppointment) Execute(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	return uc.execute(ctx, appointmentID)
}

// ======================================================
// COMPLETE
// ======================================================

type CompleteAppointment struct {
	statusChange
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{statusChange{
		repo:   repo,
		audit:  audit,
		to:     domain.StatusCompleted,
		action: "appointment_completed",
	}}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	return uc.execute(ctx, appointmentID)
}
