package earning

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	apdomain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	userdomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Store é a persistência de ganhos.
type Store interface {
	Create(ctx context.Context, e *models.Earning) error
	List(ctx context.Context, barberID uint) ([]models.Earning, error)
}

type CreateEarningInput struct {
	BarberID     uint
	EarningDate  time.Time
	Value        decimal.Decimal
	SchedulingID *uint
}

// ======================================================
// CREATE
// ======================================================

type CreateEarning struct {
	earnings     Store
	users        userdomain.Repository
	appointments apdomain.Repository
	audit        *audit.Dispatcher
}

func NewCreateEarning(
	earnings Store,
	users userdomain.Repository,
	appointments apdomain.Repository,
	audit *audit.Dispatcher,
) *CreateEarning {
	return &CreateEarning{
		earnings:     earnings,
		users:        users,
		appointments: appointments,
		audit:        audit,
	}
}

func (uc *CreateEarning) Execute(
	ctx context.Context,
	in CreateEarningInput,
) (*models.Earning, error) {

	var fields []httperr.FieldError
	if in.BarberID == 0 {
		fields = append(fields, httperr.FieldError{Field: "barber_id", Rule: "required"})
	}
	if in.EarningDate.IsZero() {
		fields = append(fields, httperr.FieldError{Field: "earning_date", Rule: "required"})
	}
	value, invalid := validators.Money("value", in.Value)
	fields = append(fields, invalid...)
	if len(fields) > 0 {
		return nil, httperr.ErrValidation("invalid_request", fields...)
	}

	if err := requireBarber(ctx, uc.users, in.BarberID); err != nil {
		return nil, err
	}

	// o agendamento vinculado precisa ser do mesmo barbeiro
	if in.SchedulingID != nil {
		ap, err := uc.appointments.GetAppointment(ctx, *in.SchedulingID)
		if err != nil {
			return nil, err
		}
		if ap.BarberID != in.BarberID {
			return nil, httperr.ErrValidation("scheduling_barber_mismatch",
				httperr.FieldError{Field: "scheduling_id", Rule: "barber"})
		}
	}

	e := &models.Earning{
		BarberID:     in.BarberID,
		EarningDate:  in.EarningDate.UTC(),
		Value:        value,
		SchedulingID: in.SchedulingID,
	}

	if err := uc.earnings.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.BarberID,
		Action:   "earning_created",
		Entity:   "earning",
		EntityID: &e.ID,
		Metadata: map[string]any{"value": e.Value.String()},
	})

	return e, nil
}

// ======================================================
// LIST
// ======================================================

type ListEarnings struct {
	earnings Store
	users    userdomain.Repository
}

func NewListEarnings(earnings Store, users userdomain.Repository) *ListEarnings {
	return &ListEarnings{earnings: earnings, users: users}
}

func (uc *ListEarnings) All(ctx context.Context) ([]models.Earning, error) {
	return uc.earnings.List(ctx, 0)
}

// ByBarber devolve os ganhos do barbeiro com o total somado.
func (uc *ListEarnings) ByBarber(ctx context.Context, barberID uint) (dto.BarberEarningsDTO, error) {
	if err := requireBarber(ctx, uc.users, barberID); err != nil {
		return dto.BarberEarningsDTO{}, err
	}

	earnings, err := uc.earnings.List(ctx, barberID)
	if err != nil {
		return dto.BarberEarningsDTO{}, err
	}
	return dto.FromBarberEarnings(barberID, earnings), nil
}

func requireBarber(ctx context.Context, users userdomain.Repository, id uint) error {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return httperr.ErrNotFound("barber_not_found")
		}
		return err
	}
	if userdomain.Type(u.Type) != userdomain.TypeBarber {
		return httperr.ErrValidation("user_is_not_barber",
			httperr.FieldError{Field: "barber_id", Rule: "barber"})
	}
	return nil
}
