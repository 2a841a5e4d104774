package appointment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	userdomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID        uint
	BarberID        uint
	ServiceID       uint
	AppointmentDate time.Time

	// opcionais
	Status string
	Value  *decimal.Decimal
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.execute(ctx, in)

	switch {
	case err == nil:
		metrics.ObserveBooking(metrics.OutcomeCreated)
	case httperr.IsBusiness(err, domain.CodeSlotUnavailable):
		metrics.ObserveBooking(metrics.OutcomeConflict)
	case httperr.KindOf(err) == httperr.KindStorage:
		metrics.ObserveBooking(metrics.OutcomeError)
	default:
		metrics.ObserveBooking(metrics.OutcomeInvalid)
	}

	return ap, err
}

func (uc *CreateAppointment) execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	status, err := domain.InitialStatus(in.Status)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Cliente e barbeiro
	// --------------------------------------------------
	if _, err := uc.repo.GetUser(ctx, in.ClientID); err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return nil, httperr.ErrNotFound("client_not_found")
		}
		return nil, err
	}

	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return nil, httperr.ErrNotFound("barber_not_found")
		}
		return nil, err
	}
	if userdomain.Type(barber.Type) != userdomain.TypeBarber {
		return nil, httperr.ErrValidation("user_is_not_barber",
			httperr.FieldError{Field: "barber_id", Rule: "barber"})
	}

	// --------------------------------------------------
	// 3️⃣ Serviço e valor
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	value := service.Price
	if in.Value != nil {
		value = in.Value.Round(2)
	}

	// --------------------------------------------------
	// 4️⃣ Reserva atômica (checagem + insert na mesma transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:        in.ClientID,
		BarberID:        in.BarberID,
		ServiceID:       service.ID,
		AppointmentDate: domain.NormalizeTime(in.AppointmentDate),
		Status:          string(status),
		Value:           value,
	}

	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotUnavailable) {
			uc.audit.Dispatch(audit.Event{
				ActorID: &in.ClientID,
				Action:  "appointment_conflict",
				Entity:  "appointment",
				Metadata: map[string]any{
					"barber_id":        in.BarberID,
					"appointment_date": ap.AppointmentDate,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func validateCreate(in CreateAppointmentInput) error {
	var fields []httperr.FieldError

	if in.ClientID == 0 {
		fields = append(fields, httperr.FieldError{Field: "client_id", Rule: "required"})
	}
	if in.BarberID == 0 {
		fields = append(fields, httperr.FieldError{Field: "barber_id", Rule: "required"})
	}
	if in.ServiceID == 0 {
		fields = append(fields, httperr.FieldError{Field: "service_id", Rule: "required"})
	}
	if in.AppointmentDate.IsZero() {
		fields = append(fields, httperr.FieldError{Field: "appointment_date", Rule: "required"})
	}
	if in.Value != nil {
		_, invalid := validators.Money("value", *in.Value)
		fields = append(fields, invalid...)
	}

	if len(fields) > 0 {
		return httperr.ErrValidation("invalid_request", fields...)
	}
	return nil
}
