package earning

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

type env struct {
	create  *CreateEarning
	list    *ListEarnings
	barber  models.User
	barber2 models.User
	client  models.User
	ap      models.Appointment
}

func newEnv(t *testing.T) env {
	t.Helper()
	db := testutil.NewDB(t)

	d := audit.NewDispatcher(nil)
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	e := env{
		barber:  models.User{Name: "Zé", Email: "ze@barbearia.com", Type: "barber"},
		barber2: models.User{Name: "Tião", Email: "tiao@barbearia.com", Type: "barber"},
		client:  models.User{Name: "Carlos", Email: "carlos@cliente.com", Type: "client"},
	}
	require.NoError(t, db.Create(&e.barber).Error)
	require.NoError(t, db.Create(&e.barber2).Error)
	require.NoError(t, db.Create(&e.client).Error)

	svc := models.Service{Description: "Corte", Price: decimal.RequireFromString("45"), Duration: 30}
	require.NoError(t, db.Create(&svc).Error)

	e.ap = models.Appointment{
		ClientID:        e.client.ID,
		BarberID:        e.barber.ID,
		ServiceID:       svc.ID,
		AppointmentDate: time.Date(2026, 11, 3, 14, 0, 0, 0, time.UTC),
		Status:          "completed",
		Value:           svc.Price,
	}
	require.NoError(t, db.Create(&e.ap).Error)

	earnings := repository.NewEarningGormRepository(db)
	users := repository.NewUserGormRepository(db)
	appointments := repository.NewAppointmentGormRepository(db)

	e.create = NewCreateEarning(earnings, users, appointments, d)
	e.list = NewListEarnings(earnings, users)
	return e
}

func TestCreateEarningAndTotal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	day := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	first, err := e.create.Execute(ctx, CreateEarningInput{
		BarberID: e.barber.ID, EarningDate: day, Value: decimal.RequireFromString("45.00"), SchedulingID: &e.ap.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = e.create.Execute(ctx, CreateEarningInput{
		BarberID: e.barber.ID, EarningDate: day.AddDate(0, 0, 1), Value: decimal.RequireFromString("0.10"),
	})
	require.NoError(t, err)

	_, err = e.create.Execute(ctx, CreateEarningInput{
		BarberID: e.barber2.ID, EarningDate: day, Value: decimal.RequireFromString("30"),
	})
	require.NoError(t, err)

	summary, err := e.list.ByBarber(ctx, e.barber.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "45.1", summary.Total.String())
	assert.True(t, summary.Earnings[0].EarningDate.After(summary.Earnings[1].EarningDate))

	odd, err := e.create.Execute(ctx, CreateEarningInput{
		BarberID: e.barber2.ID, EarningDate: day, Value: decimal.RequireFromString("0.125"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0.13", odd.Value.String())

	all, err := e.list.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	other, err := e.list.ByBarber(ctx, e.barber2.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, other.Count)
	assert.Equal(t, "30.13", other.Total.String())
}

func TestCreateEarningErrors(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	day := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	missing := uint(999)

	tests := []struct {
		name     string
		in       CreateEarningInput
		wantCode string
	}{
		{"missing fields", CreateEarningInput{}, "invalid_request"},
		{"negative value", CreateEarningInput{BarberID: e.barber.ID, EarningDate: day, Value: decimal.NewFromInt(-5)}, "invalid_request"},
		{"value overflow", CreateEarningInput{BarberID: e.barber.ID, EarningDate: day, Value: decimal.RequireFromString("100000000")}, "invalid_request"},
		{"unknown barber", CreateEarningInput{BarberID: 999, EarningDate: day, Value: decimal.NewFromInt(5)}, "barber_not_found"},
		{"client is not barber", CreateEarningInput{BarberID: e.client.ID, EarningDate: day, Value: decimal.NewFromInt(5)}, "user_is_not_barber"},
		{"unknown scheduling", CreateEarningInput{BarberID: e.barber.ID, EarningDate: day, Value: decimal.NewFromInt(5), SchedulingID: &missing}, "appointment_not_found"},
		{"scheduling of other barber", CreateEarningInput{BarberID: e.barber2.ID, EarningDate: day, Value: decimal.NewFromInt(5), SchedulingID: &e.ap.ID}, "scheduling_barber_mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.create.Execute(ctx, tt.in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode), "got %v", err)
		})
	}

	_, err := e.list.ByBarber(ctx, e.client.ID)
	assert.True(t, httperr.IsBusiness(err, "user_is_not_barber"))
}
