package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	errorResponder

	timezone string

	create   *ucAppointment.CreateAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	list     *ucAppointment.ListAppointments
	check    *ucAppointment.CheckAvailability
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	list *ucAppointment.ListAppointments,
	check *ucAppointment.CheckAvailability,
	timezone string,
	exposeDetails bool,
) *AppointmentHandler {
	return &AppointmentHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		timezone:       timezone,
		create:         create,
		cancel:         cancel,
		complete:       complete,
		list:           list,
		check:          check,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID        uint             `json:"client_id" validate:"required"`
	BarberID        uint             `json:"barber_id" validate:"required"`
	ServiceID       uint             `json:"service_id" validate:"required"`
	AppointmentDate string           `json:"appointment_date" validate:"required"`
	Status          string           `json:"status"`
	Value           *decimal.Decimal `json:"value"`
}

type CheckAvailabilityRequest struct {
	BarberID        uint   `json:"barber_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// CheckAvailability responde 200 quando livre e 409 quando o horário já está tomado.
func (h *AppointmentHandler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validators.Struct(req).Err(); err != nil {
		h.fail(c, err)
		return
	}

	at, err := parseDateTimeField("appointment_date", req.AppointmentDate, h.timezone)
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.check.Execute(c.Request.Context(), ucAppointment.CheckAvailabilityInput{
		BarberID:        req.BarberID,
		AppointmentDate: at,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	if !res.Available {
		c.JSON(http.StatusConflict, res)
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validators.Struct(req).Err(); err != nil {
		h.fail(c, err)
		return
	}

	at, err := parseDateTimeField("appointment_date", req.AppointmentDate, h.timezone)
	if err != nil {
		h.fail(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:        req.ClientID,
		BarberID:        req.BarberID,
		ServiceID:       req.ServiceID,
		AppointmentDate: at,
		Status:          req.Status,
		Value:           req.Value,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.Created(c, dto.FromAppointment(ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	h.respondList(c, domain.Filter{})
}

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.respondList(c, domain.Filter{ClientID: id})
}

func (h *AppointmentHandler) ListByBarber(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	h.respondList(c, domain.Filter{BarberID: id})
}

func (h *AppointmentHandler) respondList(c *gin.Context, filter domain.Filter) {
	aps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.List(c, aps)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.OK(c, dto.FromAppointment(ap))
}
