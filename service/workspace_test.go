package service

import (
	"context"
	"io"
	"sync"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/databricks"
)

// fakeWorkspace records every remote call and answers with canned values.
type fakeWorkspace struct {
	mu sync.Mutex

	statementResp *databricks.StatementResponse
	statementErr  error
	statements    []databricks.StatementRequest

	uploadErr error
	uploads   map[string][]byte
	overwrite []bool

	servingResp *databricks.ServingResponse
	servingErr  error
	servingReqs []databricks.ServingRequest
	endpoints   []string
}

func (f *fakeWorkspace) ExecuteStatement(ctx context.Context, req databricks.StatementRequest) (*databricks.StatementResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statements = append(f.statements, req)
	return f.statementResp, f.statementErr
}

func (f *fakeWorkspace) UploadFile(ctx context.Context, path string, r io.Reader, overwrite bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.uploads[path] = b
	f.overwrite = append(f.overwrite, overwrite)
	return f.uploadErr
}

func (f *fakeWorkspace) QueryServingEndpoint(ctx context.Context, name string, req databricks.ServingRequest) (*databricks.ServingResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.endpoints = append(f.endpoints, name)
	f.servingReqs = append(f.servingReqs, req)
	return f.servingResp, f.servingErr
}

func strPtr(s string) *string {
	return &s
}

func succeeded(columns []string, rows [][]*string) *databricks.StatementResponse {
	cols := make([]databricks.ColumnInfo, len(columns))
	for i, c := range columns {
		cols[i] = databricks.ColumnInfo{Name: c, Position: i}
	}
	return &databricks.StatementResponse{
		Status:   &databricks.StatementStatus{State: databricks.StateSucceeded},
		Manifest: &databricks.ResultManifest{Schema: databricks.ResultSchema{ColumnCount: len(cols), Columns: cols}},
		Result:   &databricks.ResultData{DataArray: rows},
	}
}
