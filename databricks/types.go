package databricks

import "encoding/json"

// Statement execution states reported in StatementStatus.State.
const (
	StatePending   = "PENDING"
	StateRunning   = "RUNNING"
	StateSucceeded = "SUCCEEDED"
	StateFailed    = "FAILED"
	StateCanceled  = "CANCELED"
	StateClosed    = "CLOSED"
)

type StatementRequest struct {
	Statement   string `json:"statement"`
	WarehouseID string `json:"warehouse_id"`
	Catalog     string `json:"catalog,omitempty"`
	Schema      string `json:"schema,omitempty"`
	Disposition string `json:"disposition,omitempty"`
	Format      string `json:"format,omitempty"`
	RowLimit    int    `json:"row_limit,omitempty"`
	WaitTimeout string `json:"wait_timeout,omitempty"`
}

type StatementResponse struct {
	StatementID string           `json:"statement_id"`
	Status      *StatementStatus `json:"status,omitempty"`
	Manifest    *ResultManifest  `json:"manifest,omitempty"`
	Result      *ResultData      `json:"result,omitempty"`
}

type StatementStatus struct {
	State string          `json:"state"`
	Error *StatementError `json:"error,omitempty"`
}

type StatementError struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func (e *StatementError) String() string {
	if e == nil {
		return "None"
	}
	if e.ErrorCode == "" {
		return e.Message
	}
	return e.ErrorCode + ": " + e.Message
}

type ResultManifest struct {
	Format    string       `json:"format"`
	Schema    ResultSchema `json:"schema"`
	TotalRows int64        `json:"total_row_count"`
	Truncated bool         `json:"truncated"`
}

type ResultSchema struct {
	ColumnCount int          `json:"column_count"`
	Columns     []ColumnInfo `json:"columns"`
}

type ColumnInfo struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	Position int    `json:"position"`
}

// ResultData holds an INLINE JSON_ARRAY chunk. Every value arrives as a
// string; SQL NULL arrives as JSON null and decodes to a nil pointer.
type ResultData struct {
	ChunkIndex int         `json:"chunk_index"`
	RowCount   int64       `json:"row_count"`
	DataArray  [][]*string `json:"data_array"`
}

// ServingRequest is the dataframe_records body of a model-serving invocation.
type ServingRequest struct {
	DataframeRecords []interface{} `json:"dataframe_records"`
}

// ServingResponse keeps each prediction undecoded; callers resolve its shape.
type ServingResponse struct {
	Predictions []json.RawMessage `json:"predictions"`
}
