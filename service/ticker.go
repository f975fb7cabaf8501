package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/cache"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/config"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/validation"
)

// TickerService reads close-price series from the gold market data table.
type TickerService struct {
	warehouse *WarehouseService
	goldTable string
	cache     *cache.Cache // nil disables caching
}

func NewTickerService(warehouse *WarehouseService, goldTable string, responseCache *cache.Cache) *TickerService {
	return &TickerService{
		warehouse: warehouse,
		goldTable: goldTable,
		cache:     responseCache,
	}
}

func (s *TickerService) WarehouseID() string {
	return s.warehouse.WarehouseID()
}

// Timeseries returns up to limit (date, close) points for symbol in
// ascending date order. An unknown symbol yields an empty series.
func (s *TickerService) Timeseries(ctx context.Context, symbol string, limit int) (*models.TimeseriesResponse, error) {
	// symbol is interpolated into the statement below; this check must stay first.
	if !validation.IsValidSymbol(symbol) {
		return nil, &InvalidInputError{Detail: "Ungültiger Ticker."}
	}
	limit = validation.ClampLimit(limit, config.MaxRowLimit)

	cacheKey := fmt.Sprintf("ticker:%s|%d", symbol, limit)
	if s.cache != nil {
		if cached, found := s.cache.Get(cacheKey); found {
			return cached.(*models.TimeseriesResponse), nil
		}
	}

	result, err := s.warehouse.Query(ctx, tickerStatement(s.goldTable, symbol, limit), limit)
	if err != nil {
		log.Printf("[TICKER] Query for %s failed: %v", symbol, err)
		return nil, err
	}

	resp, err := toTimeseries(symbol, result)
	if err != nil {
		log.Printf("[TICKER] Unexpected result shape for %s: columns=%v", symbol, result.Columns)
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetDefault(cacheKey, resp)
	}
	return resp, nil
}

func tickerStatement(table, symbol string, limit int) string {
	return fmt.Sprintf("SELECT date, close FROM %s WHERE symbol = '%s' ORDER BY date LIMIT %d", table, symbol, limit)
}

func toTimeseries(symbol string, result *models.TabularResult) (*models.TimeseriesResponse, error) {
	resp := &models.TimeseriesResponse{Symbol: symbol, Rows: []models.TimeseriesPoint{}}
	if len(result.Columns) == 0 || len(result.Rows) == 0 {
		return resp, nil
	}

	dateIdx := result.ColumnIndex("date")
	closeIdx := result.ColumnIndex("close")
	if dateIdx < 0 || closeIdx < 0 {
		return nil, &SchemaMismatchError{Expected: []string{"date", "close"}, Columns: result.Columns}
	}

	resp.Rows = make([]models.TimeseriesPoint, 0, len(result.Rows))
	for _, row := range result.Rows {
		resp.Rows = append(resp.Rows, models.TimeseriesPoint{
			Date:  cell(row, dateIdx),
			Close: parseClose(cell(row, closeIdx)),
		})
	}
	return resp, nil
}

func cell(row []*string, idx int) *string {
	if idx >= len(row) {
		return nil
	}
	return row[idx]
}

// parseClose returns nil for NULL, unparsable and non-finite values.
func parseClose(raw *string) *float64 {
	if raw == nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
