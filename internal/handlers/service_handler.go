package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type ServiceStore interface {
	Create(ctx context.Context, s *models.Service) error
	List(ctx context.Context) ([]models.Service, error)
}

type ServiceHandler struct {
	errorResponder

	store ServiceStore
}

func NewServiceHandler(store ServiceStore, exposeDetails bool) *ServiceHandler {
	return &ServiceHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		store:          store,
	}
}

type CreateServiceRequest struct {
	Description string           `json:"description" validate:"required,max=255"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Duration    int              `json:"duration" validate:"required,gt=0,lte=1440"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	res := validators.Struct(req)
	var price decimal.Decimal
	if req.Price != nil {
		var invalid []httperr.FieldError
		price, invalid = validators.Money("price", *req.Price)
		res.Fields = append(res.Fields, invalid...)
	}
	if err := res.Err(); err != nil {
		h.fail(c, err)
		return
	}

	svc := models.Service{
		Description: req.Description,
		Price:       price,
		Duration:    req.Duration,
	}

	if err := h.store.Create(c.Request.Context(), &svc); err != nil {
		h.fail(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	httpresp.List(c, services)
}
