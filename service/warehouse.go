package service

import (
	"context"
	"fmt"
	"io"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/databricks"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"
)

// Workspace is the part of the platform client the services use.
// *databricks.Client implements it.
type Workspace interface {
	ExecuteStatement(ctx context.Context, req databricks.StatementRequest) (*databricks.StatementResponse, error)
	UploadFile(ctx context.Context, path string, r io.Reader, overwrite bool) error
	QueryServingEndpoint(ctx context.Context, name string, req databricks.ServingRequest) (*databricks.ServingResponse, error)
}

type WarehouseService struct {
	workspace   Workspace
	warehouseID string
	catalog     string
}

func NewWarehouseService(workspace Workspace, warehouseID string, catalog string) *WarehouseService {
	return &WarehouseService{
		workspace:   workspace,
		warehouseID: warehouseID,
		catalog:     catalog,
	}
}

func (s *WarehouseService) WarehouseID() string {
	return s.warehouseID
}

// Query runs a read-only statement and returns its normalized result.
func (s *WarehouseService) Query(ctx context.Context, statement string, rowLimit int) (*models.TabularResult, error) {
	resp, err := s.workspace.ExecuteStatement(ctx, databricks.StatementRequest{
		Statement:   statement,
		WarehouseID: s.warehouseID,
		Catalog:     s.catalog,
		RowLimit:    rowLimit,
	})
	if err != nil {
		return nil, &QueryExecutionError{
			Detail: fmt.Sprintf("Fehler beim Ausführen des SQL-Statements: %v", err),
			Err:    err,
		}
	}

	return NormalizeStatement(resp)
}

// NormalizeStatement turns a statement response into a TabularResult. A
// response without manifest or result is an empty result, not an error.
func NormalizeStatement(resp *databricks.StatementResponse) (*models.TabularResult, error) {
	if resp == nil {
		return &models.TabularResult{Columns: []string{}, Rows: [][]*string{}}, nil
	}

	if resp.Status != nil && resp.Status.State != databricks.StateSucceeded {
		return nil, &QueryExecutionError{
			Detail: fmt.Sprintf("SQL-Ausführung fehlgeschlagen: %s", statusDetail(resp.Status)),
		}
	}

	if resp.Manifest == nil || resp.Result == nil {
		return &models.TabularResult{Columns: []string{}, Rows: [][]*string{}}, nil
	}

	columns := make([]string, len(resp.Manifest.Schema.Columns))
	for i, col := range resp.Manifest.Schema.Columns {
		columns[i] = col.Name
	}

	rows := resp.Result.DataArray
	if rows == nil {
		rows = [][]*string{}
	}

	return &models.TabularResult{Columns: columns, Rows: rows}, nil
}

func statusDetail(status *databricks.StatementStatus) string {
	if status.Error != nil {
		return status.Error.String()
	}
	return "state " + status.State
}
