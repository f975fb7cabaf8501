package service

import (
	"bytes"
	"context"
	"log"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/config"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"
	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/validation"
)

// UploadService stores CSV files in the configured volume. The stored path
// depends only on the filename; an existing file is overwritten.
type UploadService struct {
	workspace Workspace
	cfg       config.DatabricksConfig
}

func NewUploadService(workspace Workspace, cfg config.DatabricksConfig) *UploadService {
	return &UploadService{
		workspace: workspace,
		cfg:       cfg,
	}
}

func (s *UploadService) UploadCSV(ctx context.Context, filename string, content []byte) (*models.UploadResponse, error) {
	if !validation.IsCSVFilename(filename) {
		return nil, &UnsupportedTypeError{Filename: filename}
	}
	if len(content) == 0 {
		return nil, &EmptyFileError{Filename: filename}
	}

	record := models.UploadRecord{
		Filename:   filename,
		StoredPath: s.cfg.VolumePath(filename),
	}

	if err := s.workspace.UploadFile(ctx, record.StoredPath, bytes.NewReader(content), true); err != nil {
		log.Printf("[UPLOAD] Storing %s failed: %v", record.StoredPath, err)
		return nil, &StorageError{Path: record.StoredPath, Err: err}
	}

	log.Printf("[UPLOAD] Stored %s (%d bytes) at %s", record.Filename, len(content), record.StoredPath)
	return &models.UploadResponse{Status: "ok", Path: record.StoredPath}, nil
}
