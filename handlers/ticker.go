package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/config"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"

	"github.com/gin-gonic/gin"
)

// TickerHandler returns the close-price series of one symbol
// @Summary      Close prices for a ticker
// @Description  Returns date and close from the gold market data table for one symbol, ordered by date. An unknown symbol returns an empty list.
// @Tags         Gold
// @Produce      json
// @Param        symbol  path      string  true   "Ticker symbol, 1-20 characters of A-Z a-z 0-9 _ . -"
// @Param        limit   query     int     false  "Maximum number of rows (1-5000)"  default(500)
// @Success      200     {object}  models.TimeseriesResponse  "Close-price series"
// @Failure      400     {object}  models.ErrorResponse       "Invalid symbol, or limit not an integer in 1-5000"
// @Failure      500     {object}  models.ErrorResponse       "Query or schema failure"
// @Router       /api/v1/gold/ticker/{symbol} [get]
func (h *Handlers) TickerHandler(c *gin.Context) {
	symbol := c.Param("symbol")

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
		return
	}

	resp, err := h.tickerService.Timeseries(c.Request.Context(), symbol, limit)
	if err != nil {
		respondError(c, "TICKER", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseLimit rejects a non-integer or out-of-range limit. The handler answers
// that with 400, like every other invalid input.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return config.DefaultRowLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > config.MaxRowLimit {
		return 0, fmt.Errorf("limit muss eine Ganzzahl zwischen 1 und %d sein.", config.MaxRowLimit)
	}
	return limit, nil
}
