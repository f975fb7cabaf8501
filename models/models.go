package models

// TabularResult is a normalized SQL result. Every row has len(Columns)
// positions; a nil position is SQL NULL.
type TabularResult struct {
	Columns []string    `json:"columns"`
	Rows    [][]*string `json:"rows"`
}

// ColumnIndex returns the position of the named column or -1.
func (t *TabularResult) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// TimeseriesPoint is one row of a close-price series. A NULL date or close
// in the table is returned as null.
type TimeseriesPoint struct {
	Date  *string  `json:"date" example:"2024-01-02"`
	Close *float64 `json:"close" example:"185.64"`
}

type TimeseriesResponse struct {
	Symbol string            `json:"symbol" example:"AAPL"`
	Rows   []TimeseriesPoint `json:"rows"`
}

type UploadRecord struct {
	Filename   string `json:"filename"`
	StoredPath string `json:"stored_path"`
}

type UploadResponse struct {
	Status string `json:"status" example:"ok"`
	Path   string `json:"path" example:"/Volumes/tud_25/delovest_data/uploads/depot.csv"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatMessage struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"Wie hat sich mein Depot entwickelt?"`
}

type ChatRequest struct {
	Messages    []ChatMessage `json:"messages" binding:"required"`
	Temperature *float64      `json:"temperature,omitempty" example:"0.7"`
	MaxTokens   *int          `json:"max_tokens,omitempty" example:"500"`
	CSVPath     string        `json:"csv_path,omitempty" example:"/Volumes/tud_25/delovest_data/uploads/depot.csv"`
}

// ErrorResponse is the body of every non-2xx API answer.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
