package databricks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// QueryServingEndpoint invokes a model-serving endpoint by name.
func (c *Client) QueryServingEndpoint(ctx context.Context, name string, req ServingRequest) (*ServingResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("query serving endpoint: endpoint name is empty")
	}

	var resp ServingResponse
	path := "/serving-endpoints/" + url.PathEscape(name) + "/invocations"
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("query serving endpoint %s: %w", name, err)
	}
	return &resp, nil
}
