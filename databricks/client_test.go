package databricks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateAuthEnv keeps credentials of the machine running the tests out of
// the client's unified auth.
func isolateAuthEnv(t *testing.T) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"DATABRICKS_HOST", "DATABRICKS_TOKEN", "DATABRICKS_CLIENT_ID", "DATABRICKS_CLIENT_SECRET",
		"DATABRICKS_CONFIG_PROFILE", "DATABRICKS_CONFIG_FILE", "DATABRICKS_AUTH_TYPE",
	} {
		t.Setenv(key, "")
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	isolateAuthEnv(t)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "dapi-test", 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestNewRequiresHost(t *testing.T) {
	isolateAuthEnv(t)

	_, err := New("  ", "token", time.Second)
	assert.Error(t, err)
}

func TestNewAddsScheme(t *testing.T) {
	isolateAuthEnv(t)

	c, err := New("adb-123.azuredatabricks.net/", "token", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "https://adb-123.azuredatabricks.net", c.Host())
}

func TestExecuteStatement(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/2.0/sql/statements", r.URL.Path)
		assert.Equal(t, "Bearer dapi-test", r.Header.Get("Authorization"))

		var req StatementRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "SELECT 1", req.Statement)
		assert.Equal(t, "wh-1", req.WarehouseID)
		assert.Equal(t, "INLINE", req.Disposition)
		assert.Equal(t, "JSON_ARRAY", req.Format)
		assert.Equal(t, "30s", req.WaitTimeout)
		assert.Equal(t, 10, req.RowLimit)

		_, _ = io.WriteString(w, `{
			"statement_id": "01ef",
			"status": {"state": "SUCCEEDED"},
			"manifest": {"schema": {"column_count": 2, "columns": [{"name": "date", "position": 0}, {"name": "close", "position": 1}]}},
			"result": {"data_array": [["2024-01-02", "185.64"], ["2024-01-03", null]]}
		}`)
	})

	resp, err := c.ExecuteStatement(context.Background(), StatementRequest{
		Statement:   "SELECT 1",
		WarehouseID: "wh-1",
		RowLimit:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, StateSucceeded, resp.Status.State)
	require.Len(t, resp.Manifest.Schema.Columns, 2)
	assert.Equal(t, "close", resp.Manifest.Schema.Columns[1].Name)
	require.Len(t, resp.Result.DataArray, 2)
	assert.Equal(t, "185.64", *resp.Result.DataArray[0][1])
	assert.Nil(t, resp.Result.DataArray[1][1])
}

func TestServicePrincipalAuth(t *testing.T) {
	isolateAuthEnv(t)
	t.Setenv("DATABRICKS_CLIENT_ID", "app-sp-id")
	t.Setenv("DATABRICKS_CLIENT_SECRET", "app-sp-secret")

	var srv *httptest.Server
	var tokenRequests atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/oidc/.well-known/oauth-authorization-server", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"authorization_endpoint": srv.URL + "/oidc/v1/authorize",
			"token_endpoint":         srv.URL + "/oidc/v1/token",
		})
	})
	mux.HandleFunc("/oidc/v1/token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests.Add(1)
		id, secret, ok := r.BasicAuth()
		if !ok {
			id, secret = r.FormValue("client_id"), r.FormValue("client_secret")
		}
		assert.Equal(t, "app-sp-id", id)
		assert.Equal(t, "app-sp-secret", secret)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "sp-access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/api/2.0/sql/statements", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sp-access-token", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"statement_id": "01", "status": {"state": "SUCCEEDED"}}`)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "", 5*time.Second)
	require.NoError(t, err)

	resp, err := c.ExecuteStatement(context.Background(), StatementRequest{Statement: "SELECT 1"})
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, resp.Status.State)
	assert.Equal(t, int32(1), tokenRequests.Load())
}

func TestExecuteStatementAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error_code": "PERMISSION_DENIED", "message": "no access to warehouse"}`)
	})

	_, err := c.ExecuteStatement(context.Background(), StatementRequest{Statement: "SELECT 1"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "PERMISSION_DENIED", apiErr.ErrorCode)
	assert.Contains(t, err.Error(), "no access to warehouse")
}

func TestAPIErrorWithPlainBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.ExecuteStatement(context.Background(), StatementRequest{Statement: "SELECT 1"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "bad gateway", apiErr.Message)
	assert.Empty(t, apiErr.ErrorCode)
}

func TestUploadFile(t *testing.T) {
	var gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/2.0/fs/files/Volumes/tud_25/delovest_data/uploads/my depot.csv", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("overwrite"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))

		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.UploadFile(context.Background(), "/Volumes/tud_25/delovest_data/uploads/my depot.csv", strings.NewReader("isin,qty\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "isin,qty\n", gotBody)
}

func TestUploadFileRejectsRelativePath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	err := c.UploadFile(context.Background(), "Volumes/x.csv", strings.NewReader("a"), true)
	assert.Error(t, err)
}

func TestUploadFileFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error_code": "NOT_FOUND", "message": "volume does not exist"}`)
	})

	err := c.UploadFile(context.Background(), "/Volumes/a/b/c/d.csv", strings.NewReader("a"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume does not exist")
}

func TestQueryServingEndpoint(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/serving-endpoints/delovest_agent/invocations", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		records, ok := body["dataframe_records"].([]interface{})
		assert.True(t, ok)
		assert.Len(t, records, 1)

		_, _ = io.WriteString(w, `{"predictions": [{"output": "Hallo"}, "second"]}`)
	})

	resp, err := c.QueryServingEndpoint(context.Background(), "delovest_agent", ServingRequest{
		DataframeRecords: []interface{}{map[string]interface{}{"input": "Hi"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Predictions, 2)
	assert.JSONEq(t, `{"output": "Hallo"}`, string(resp.Predictions[0]))
}

func TestQueryServingEndpointRequiresName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := c.QueryServingEndpoint(context.Background(), "", ServingRequest{})
	assert.Error(t, err)
}

func TestStatementErrorString(t *testing.T) {
	var nilErr *StatementError
	assert.Equal(t, "None", nilErr.String())
	assert.Equal(t, "boom", (&StatementError{Message: "boom"}).String())
	assert.Equal(t, "PARSE_SYNTAX_ERROR: boom", (&StatementError{ErrorCode: "PARSE_SYNTAX_ERROR", Message: "boom"}).String())
}
