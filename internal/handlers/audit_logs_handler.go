package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	errorResponder

	db       *gorm.DB
	timezone string
}

func NewAuditLogsHandler(db *gorm.DB, timezone string, exposeDetails bool) *AuditLogsHandler {
	return &AuditLogsHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		db:             db,
		timezone:       timezone,
	}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.
		WithContext(c.Request.Context()).
		Model(&models.AuditLog{})

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		from, err := parseDayOrDateTime("from", fromStr, h.timezone)
		if err != nil {
			h.fail(c, err)
			return
		}
		q = q.Where("created_at >= ?", from.UTC())
	}

	if toStr != "" {
		to, err := parseDayOrDateTime("to", toStr, h.timezone)
		if err != nil {
			h.fail(c, err)
			return
		}
		// um dia sem hora inclui o dia inteiro
		if _, dayErr := timezone.ParseDate(toStr, h.timezone); dayErr == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour).UTC())
		} else {
			q = q.Where("created_at <= ?", to.UTC())
		}
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.fail(c, httperr.ErrStorage(err))
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		h.fail(c, httperr.ErrStorage(err))
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
