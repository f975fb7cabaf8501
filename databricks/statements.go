package databricks

import (
	"context"
	"fmt"
	"net/http"
)

const (
	dispositionInline = "INLINE"
	formatJSONArray   = "JSON_ARRAY"

	// Server-side wait budget; after it the statement reports a non-terminal state.
	statementWaitTimeout = "30s"
)

// ExecuteStatement runs one SQL statement on a warehouse and waits up to 30s
// for an inline JSON_ARRAY result.
func (c *Client) ExecuteStatement(ctx context.Context, req StatementRequest) (*StatementResponse, error) {
	if req.Disposition == "" {
		req.Disposition = dispositionInline
	}
	if req.Format == "" {
		req.Format = formatJSONArray
	}
	if req.WaitTimeout == "" {
		req.WaitTimeout = statementWaitTimeout
	}

	var resp StatementResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/2.0/sql/statements", req, &resp); err != nil {
		return nil, fmt.Errorf("execute statement: %w", err)
	}
	return &resp, nil
}
