package storage

import (
	"htgen/internal/config"
	"htgen/internal/domain"
)

// Storage persists and loads generation reports (e.g. for the report command).
type Storage interface {
	Save(report *domain.GenerationReport) error
	Load() (*domain.GenerationReport, error)
}

// JSONStorage stores reports in a JSON file under the configured report path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's report path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
