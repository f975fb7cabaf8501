package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler checks the health status of the service
// @Summary      Health check
// @Description  Reports liveness, the configured warehouse and serving endpoint, and whether the frontend bundle is present
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string  "Service health status"
// @Router       /health [get]
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := gin.H{
		"status":           "healthy",
		"warehouse_id":     h.tickerService.WarehouseID(),
		"serving_endpoint": h.agentService.Endpoint(),
		"frontend":         "missing",
	}

	if isFile(h.bundleIndex()) {
		status["frontend"] = "present"
	}

	c.JSON(http.StatusOK, status)
}
