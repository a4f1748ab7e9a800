package handlers

import (
	"context"
	"net/http"
	"time"

	"quiz_app_backend/models"
	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(s *store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()
	if err := h.store.Ping(ctx); err != nil {
		glog.Warningf("Health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, models.HealthResponse{
			Status:    "ERROR",
			Timestamp: now,
			Error:     "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: now,
	})
}
