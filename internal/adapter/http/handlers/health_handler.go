package handlers

import (
	"context"
	"net/http"
	"time"

	response "efectivio/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	now := time.Now().UTC()
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			log.WithError(err).Warn("[health][handler] database unreachable")
			c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "degraded", Time: now})
			return
		}
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Time: now})
}
