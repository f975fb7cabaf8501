package handlers

import (
	"log"
	"net/http"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/service"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Analysis API
// @version         1.0
// @description     Backend for the portfolio analysis app. Reads price series from the gold table, stores CSV uploads in a volume and forwards chat turns to the portfolio agent.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /

// @schemes   http https

type Handlers struct {
	tickerService *service.TickerService
	uploadService *service.UploadService
	agentService  *service.AgentService
	buildDir      string
}

func New(tickerService *service.TickerService, uploadService *service.UploadService, agentService *service.AgentService, buildDir string) *Handlers {
	return &Handlers{
		tickerService: tickerService,
		uploadService: uploadService,
		agentService:  agentService,
		buildDir:      buildDir,
	}
}

// respondError writes err as {"detail": ...}: 400 for rejected caller input,
// 500 for everything else.
func respondError(c *gin.Context, tag string, err error) {
	status := http.StatusInternalServerError
	if service.IsInvalidInput(err) {
		status = http.StatusBadRequest
	}
	log.Printf("[%s] %s %s -> %d: %v", tag, requestID(c), c.Request.URL.Path, status, err)
	c.JSON(status, models.ErrorResponse{Detail: err.Error()})
}
