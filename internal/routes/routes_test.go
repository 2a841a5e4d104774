package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/testutil"
)

type testServer struct {
	router     *gin.Engine
	db         *gorm.DB
	dispatcher *audit.Dispatcher
}

func newTestServer(t *testing.T, expose bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := &config.Config{
		Timezone:           "America/Sao_Paulo",
		BcryptCost:         bcrypt.MinCost,
		ExposeErrorDetails: expose,
	}

	d := audit.NewDispatcher(nil, audit.New(db))
	t.Cleanup(func() { _ = d.Close(context.Background()) })

	return &testServer{
		router:     NewRouter(db, cfg, zap.NewNop(), d),
		db:         db,
		dispatcher: d,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type idResponse struct {
	ID uint `json:"id"`
}

func (s *testServer) seed(t *testing.T) (barberID, clientID, serviceID uint) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/users", gin.H{
		"name": "Zé Navalha", "email": "ze@barbearia.com", "type": "barber", "password": "navalha123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")
	barberID = decode[idResponse](t, w).ID

	w = s.do(t, http.MethodPost, "/api/users", gin.H{
		"name": "Carlos", "email": "carlos@cliente.com", "phone_contact": "11999990000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	clientID = decode[idResponse](t, w).ID

	w = s.do(t, http.MethodPost, "/api/services", gin.H{
		"description": "Corte", "price": "45.00", "duration": 30,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	serviceID = decode[idResponse](t, w).ID

	return barberID, clientID, serviceID
}

// ======================================================
// BOOKING FLOW
// ======================================================

func TestBookingScenario(t *testing.T) {
	s := newTestServer(t, false)
	barberID, clientID, serviceID := s.seed(t)

	check := gin.H{"barber_id": barberID, "appointment_date": "2026-11-03 14:00"}

	// livre
	w := s.do(t, http.MethodPost, "/api/checkAppointmentAvailability", check)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"available":true}`, w.Body.String())

	// agenda
	w = s.do(t, http.MethodPost, "/api/appointments", gin.H{
		"client_id": clientID, "barber_id": barberID, "service_id": serviceID,
		"appointment_date": "2026-11-03 14:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[struct {
		ID     uint            `json:"id"`
		Status string          `json:"status"`
		Value  decimal.Decimal `json:"value"`
	}](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "scheduled", created.Status)
	assert.True(t, decimal.RequireFromString("45").Equal(created.Value))

	// ocupado
	w = s.do(t, http.MethodPost, "/api/checkAppointmentAvailability", check)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"available":false,"message":"Horário indisponível para este barbeiro."}`, w.Body.String())

	// mesmo instante em UTC
	w = s.do(t, http.MethodPost, "/api/checkAppointmentAvailability", gin.H{
		"barber_id": barberID, "appointment_date": "2026-11-03T17:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// segunda reserva do mesmo horário
	w = s.do(t, http.MethodPost, "/api/appointments", gin.H{
		"client_id": clientID, "barber_id": barberID, "service_id": serviceID,
		"appointment_date": "2026-11-03T14:00:00-03:00",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "slot_unavailable", decode[map[string]any](t, w)["error"])

	// sobreposição não é conflito
	w = s.do(t, http.MethodPost, "/api/checkAppointmentAvailability", gin.H{
		"barber_id": barberID, "appointment_date": "2026-11-03 14:15",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// listagens
	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/appointments/barber/%d", barberID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/appointments/client/%d", barberID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// cancelamento libera o horário
	w = s.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/cancel", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/checkAppointmentAvailability", check)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPatch, fmt.Sprintf("/api/appointments/%d/complete", created.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_state", decode[map[string]any](t, w)["error"])

	// auditoria gravada de forma assíncrona
	require.NoError(t, s.dispatcher.Close(context.Background()))

	w = s.do(t, http.MethodGet, "/api/audit-logs?action=appointment_conflict", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[struct {
		Total int64            `json:"total"`
		Data  []map[string]any `json:"data"`
	}](t, w)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Data, 1)
}

func TestAppointmentValidation(t *testing.T) {
	s := newTestServer(t, false)
	barberID, clientID, serviceID := s.seed(t)

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"empty booking", "/api/appointments", gin.H{}, http.StatusBadRequest, "invalid_request"},
		{"empty check", "/api/checkAppointmentAvailability", gin.H{}, http.StatusBadRequest, "invalid_request"},
		{"bad date", "/api/checkAppointmentAvailability", gin.H{"barber_id": barberID, "appointment_date": "amanhã"}, http.StatusBadRequest, "invalid_date"},
		{"client as barber", "/api/appointments", gin.H{"client_id": clientID, "barber_id": clientID, "service_id": serviceID, "appointment_date": "2026-11-03 10:00"}, http.StatusBadRequest, "user_is_not_barber"},
		{"unknown service", "/api/appointments", gin.H{"client_id": clientID, "barber_id": barberID, "service_id": 999, "appointment_date": "2026-11-03 10:00"}, http.StatusNotFound, "service_not_found"},
		{"malformed json", "/api/appointments", "não é objeto", http.StatusBadRequest, "invalid_json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, tt.path, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())
			assert.Equal(t, tt.code, decode[map[string]any](t, w)["error"])
		})
	}

	w := s.do(t, http.MethodPost, "/api/appointments", gin.H{})
	body := decode[struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}](t, w)

	var fields []string
	for _, f := range body.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"client_id", "barber_id", "service_id", "appointment_date"}, fields)
}

// ======================================================
// AUTH / USERS
// ======================================================

func TestAuthenticate(t *testing.T) {
	s := newTestServer(t, false)
	s.seed(t)

	w := s.do(t, http.MethodPost, "/api/auth", gin.H{"email": "ninguem@barbearia.com", "password": "x"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, decode[map[string]any](t, w)["authenticated"])

	w = s.do(t, http.MethodPost, "/api/auth", gin.H{"email": "ze@barbearia.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth", gin.H{"email": "ZE@barbearia.com", "password": "navalha123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	res := decode[struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			Email string `json:"email"`
			Type  string `json:"type"`
		} `json:"user"`
	}](t, w)
	assert.True(t, res.Authenticated)
	assert.Equal(t, "ze@barbearia.com", res.User.Email)
	assert.Equal(t, "barber", res.User.Type)
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t, false)
	barberID, _, _ := s.seed(t)

	w := s.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Len(t, decode[[]map[string]any](t, w), 2)

	for _, path := range []string{"/api/barbers", "/api/users/barbers"} {
		w = s.do(t, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		barbers := decode[[]idResponse](t, w)
		require.Len(t, barbers, 1)
		assert.Equal(t, barberID, barbers[0].ID)
	}

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", barberID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/users", gin.H{"name": "Outro Zé", "email": "ze@barbearia.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_already_exists", decode[map[string]any](t, w)["error"])
}

// ======================================================
// EARNINGS
// ======================================================

func TestEarnings(t *testing.T) {
	s := newTestServer(t, false)
	barberID, clientID, _ := s.seed(t)

	w := s.do(t, http.MethodPost, "/api/earnings", gin.H{
		"barber_id": barberID, "earning_date": "2026-11-03", "value": "45.00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/earnings", gin.H{
		"barber_id": barberID, "earning_date": "2026-11-04", "value": 30.5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/earnings", gin.H{
		"barber_id": clientID, "earning_date": "2026-11-04", "value": "10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/earnings", gin.H{
		"barber_id": barberID, "earning_date": "2026-11-04", "value": "-1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/earnings/barber/%d", barberID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[struct {
		Total decimal.Decimal `json:"total"`
		Count int             `json:"count"`
	}](t, w)
	assert.Equal(t, 2, summary.Count)
	assert.True(t, decimal.RequireFromString("75.5").Equal(summary.Total), summary.Total.String())

	w = s.do(t, http.MethodGet, "/api/earnings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 2)
}

func fieldNames(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	body := decode[struct {
		Fields []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"fields"`
	}](t, w)

	names := make([]string, 0, len(body.Fields))
	for _, f := range body.Fields {
		names = append(names, f.Field+":"+f.Rule)
	}
	return names
}

func TestMoneyFields(t *testing.T) {
	s := newTestServer(t, false)
	barberID, _, _ := s.seed(t)

	tests := []struct {
		name  string
		path  string
		body  gin.H
		field string
	}{
		{"service without price", "/api/services", gin.H{"description": "Barba", "duration": 20}, "price:required"},
		{"service with negative price", "/api/services", gin.H{"description": "Barba", "duration": 20, "price": "-1"}, "price:gte"},
		{"service price overflow", "/api/services", gin.H{"description": "Barba", "duration": 20, "price": "100000000"}, "price:lte"},
		{"earning without value", "/api/earnings", gin.H{"barber_id": barberID, "earning_date": "2026-11-03"}, "value:required"},
		{"earning value overflow", "/api/earnings", gin.H{"barber_id": barberID, "earning_date": "2026-11-03", "value": "123456789.00"}, "value:lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, "invalid_request", decode[map[string]any](t, w)["error"])
			assert.Contains(t, fieldNames(t, w), tt.field)
		})
	}

	w := s.do(t, http.MethodPost, "/api/services", gin.H{"description": "Barba", "duration": 20, "price": "25.555"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"price":"25.56"`)

	w = s.do(t, http.MethodPost, "/api/earnings", gin.H{"barber_id": barberID, "earning_date": "2026-11-03", "value": "10.004"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"value":"10"`)

	w = s.do(t, http.MethodPost, "/api/earnings", gin.H{"barber_id": barberID, "earning_date": "2026-11-03", "value": 0})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

// ======================================================
// AUDIT LOGS
// ======================================================

func TestAuditLogsDateFilters(t *testing.T) {
	s := newTestServer(t, false)
	s.seed(t)
	require.NoError(t, s.dispatcher.Close(context.Background()))

	for _, q := range []string{"from=ontem", "to=2026-13-40", "from=2026-01-01&to=depois"} {
		t.Run(q, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/api/audit-logs?"+q, nil)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, "invalid_date", decode[map[string]any](t, w)["error"])
		})
	}

	w := s.do(t, http.MethodGet, "/api/audit-logs?action=user_registered&from=2000-01-01&to=2100-12-31", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decode[struct {
		Total int64 `json:"total"`
	}](t, w)
	assert.Equal(t, int64(2), page.Total)

	w = s.do(t, http.MethodGet, "/api/audit-logs?to=2000-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(0), decode[struct {
		Total int64 `json:"total"`
	}](t, w).Total)
}

// ======================================================
// INFRA
// ======================================================

func TestHealthAndConnection(t *testing.T) {
	s := newTestServer(t, false)

	w := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/api/test-connection", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"now"`)

	w = s.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestStorageErrorDetails(t *testing.T) {
	for _, expose := range []bool{true, false} {
		t.Run(fmt.Sprintf("expose=%v", expose), func(t *testing.T) {
			s := newTestServer(t, expose)
			require.NoError(t, s.dispatcher.Close(context.Background()))

			sqlDB, err := s.db.DB()
			require.NoError(t, err)
			require.NoError(t, sqlDB.Close())

			w := s.do(t, http.MethodGet, "/api/test-connection", nil)
			require.Equal(t, http.StatusInternalServerError, w.Code)

			body := decode[map[string]any](t, w)
			assert.Equal(t, "database_error", body["error"])
			_, hasDetails := body["details"]
			assert.Equal(t, expose, hasDetails)
		})
	}
}
