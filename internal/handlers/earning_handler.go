package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucEarning "github.com/BruksfildServices01/barber-booking/internal/usecase/earning"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type EarningHandler struct {
	errorResponder

	timezone string

	create *ucEarning.CreateEarning
	list   *ucEarning.ListEarnings
}

func NewEarningHandler(
	create *ucEarning.CreateEarning,
	list *ucEarning.ListEarnings,
	timezone string,
	exposeDetails bool,
) *EarningHandler {
	return &EarningHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		timezone:       timezone,
		create:         create,
		list:           list,
	}
}

type CreateEarningRequest struct {
	BarberID     uint             `json:"barber_id" validate:"required"`
	EarningDate  string           `json:"earning_date" validate:"required"`
	Value        *decimal.Decimal `json:"value" validate:"required"`
	SchedulingID *uint            `json:"scheduling_id"`
}

func (h *EarningHandler) Create(c *gin.Context) {
	var req CreateEarningRequest
	if !bindJSON(c, &req) {
		return
	}

	res := validators.Struct(req)
	var value decimal.Decimal
	if req.Value != nil {
		var invalid []httperr.FieldError
		value, invalid = validators.Money("value", *req.Value)
		res.Fields = append(res.Fields, invalid...)
	}
	if err := res.Err(); err != nil {
		h.fail(c, err)
		return
	}

	day, err := parseDayOrDateTime("earning_date", req.EarningDate, h.timezone)
	if err != nil {
		h.fail(c, err)
		return
	}

	e, err := h.create.Execute(c.Request.Context(), ucEarning.CreateEarningInput{
		BarberID:     req.BarberID,
		EarningDate:  day,
		Value:        value,
		SchedulingID: req.SchedulingID,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	httpresp.Created(c, e)
}

func (h *EarningHandler) List(c *gin.Context) {
	earnings, err := h.list.All(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.List(c, earnings)
}

func (h *EarningHandler) ListByBarber(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	summary, err := h.list.ByBarber(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.OK(c, summary)
}
