package handlers

import (
	"log"
	"net/http"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler forwards a conversation to the portfolio agent
// @Summary      Chat with the portfolio agent
// @Description  Sends the last message as the question and all earlier messages as history to the agent serving endpoint. Endpoint failures are reported in the reply content with status 200.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      models.ChatRequest    true  "Conversation, optionally with the path of an uploaded CSV file"
// @Success      200      {object}  models.ChatMessage    "Assistant reply"
// @Failure      400      {object}  models.ErrorResponse  "Malformed request body"
// @Router       /api/v1/chat [post]
func (h *Handlers) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Ungültige Anfrage: " + err.Error()})
		return
	}

	result := h.agentService.Chat(c.Request.Context(), req)
	if result.Kind != service.ResultAnswered {
		log.Printf("[AGENT] %s chat finished as %s (%d messages)", requestID(c), result.Kind, len(req.Messages))
	}

	c.JSON(http.StatusOK, result.Message())
}
