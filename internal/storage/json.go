package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"htgen/internal/domain"
)

// Save writes the report to the configured JSON report file.
func (s *JSONStorage) Save(report *domain.GenerationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	return WriteFileAtomic(s.cfg.GetReportPath(), data, 0644)
}

// Load reads the last generation report from the configured JSON report file.
func (s *JSONStorage) Load() (*domain.GenerationReport, error) {
	path := s.cfg.GetReportPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.GenerationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
