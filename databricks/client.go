package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sdkconfig "github.com/databricks/databricks-sdk-go/config"
)

// Client is the single workspace handle shared by all requests. It holds no
// per-request state and is safe for concurrent use.
//
// Credentials come from the SDK's unified auth: a personal access token, the
// app service principal (DATABRICKS_CLIENT_ID / DATABRICKS_CLIENT_SECRET), a
// config profile and so on. Requests themselves are sent once, without retry.
type Client struct {
	host       string
	auth       *sdkconfig.Config
	httpClient *http.Client
}

// APIError is a non-2xx answer from the workspace REST API.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("API error (status %d): %s - %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Message)
}

func New(host string, token string, timeout time.Duration) (*Client, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, fmt.Errorf("workspace host is not configured")
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	host = strings.TrimSuffix(host, "/")

	auth := &sdkconfig.Config{
		Host:               host,
		Token:              token,
		HTTPTimeoutSeconds: int(timeout / time.Second),
	}
	if err := auth.EnsureResolved(); err != nil {
		return nil, fmt.Errorf("failed to resolve workspace config: %w", err)
	}

	return &Client{
		host: host,
		auth: auth,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *Client) Host() string {
	return c.host
}

// doJSON sends body as JSON and decodes a 2xx response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.host+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return err
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// do authenticates req, sends it once and returns the body of a 2xx response.
func (c *Client) do(req *http.Request) ([]byte, error) {
	if err := c.auth.Authenticate(req); err != nil {
		return nil, fmt.Errorf("failed to authenticate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func parseAPIError(status int, body []byte) *APIError {
	var errorResp struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(body, &errorResp); err == nil && (errorResp.ErrorCode != "" || errorResp.Message != "") {
		return &APIError{StatusCode: status, ErrorCode: errorResp.ErrorCode, Message: errorResp.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
