package health

import (
	"net/http"

	"taskboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Check(c *gin.Context)
}

type handler struct {
	checker *utils.HealthChecker
}

func NewHandler(checker *utils.HealthChecker) Handler {
	return &handler{checker: checker}
}

// @Summary Health check
// @Description Reports PostgreSQL and Redis reachability and connection pool usage
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} utils.HealthStatus
// @Failure 503 {object} utils.HealthStatus
// @Router /health [get]
func (h *handler) Check(c *gin.Context) {
	status := h.checker.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
