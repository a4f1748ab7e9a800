package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"quiz_app_backend/models"
	"quiz_app_backend/store"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Success: false, Error: message})
}

// respondStoreError maps a store failure to a user-safe response. Only
// ErrNotFound is distinguished; everything else is logged and reported as
// internalMessage.
func respondStoreError(c *gin.Context, err error, notFoundMessage, internalMessage string) {
	if errors.Is(err, store.ErrNotFound) {
		respondError(c, http.StatusNotFound, notFoundMessage)
		return
	}
	glog.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, internalMessage)
}

// parseID reads a positive decimal integer path parameter. Only digits are
// accepted, so signs and surrounding spaces are rejected.
func parseID(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	if raw == "" || strings.TrimLeft(raw, "0123456789") != "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
