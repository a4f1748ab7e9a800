package middleware

import (
	"fmt"
	"net/http"

	"quiz_app_backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
)

// Recovery turns a panic into a generic 500 response. The panic value is
// included in the response only when exposeDetail is set.
func Recovery(exposeDetail bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		glog.Errorf("Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		response := models.ErrorResponse{Success: false, Error: "Internal server error"}
		if exposeDetail {
			response.Message = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response)
	})
}

func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: "Route not found"})
	}
}

func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Success: false, Error: "Method not allowed"})
	}
}
