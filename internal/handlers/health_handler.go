package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type HealthHandler struct {
	errorResponder

	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB, exposeDetails bool) *HealthHandler {
	return &HealthHandler{
		errorResponder: errorResponder{exposeDetails: exposeDetails},
		db:             db,
	}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TestConnection consulta o relógio do banco.
func (h *HealthHandler) TestConnection(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	now, err := dbpkg.Now(ctx, h.db)
	if err != nil {
		h.fail(c, httperr.ErrStorage(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"now": now})
}
