package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"htgen/internal/domain"
)

// BuildReport summarizes a generate run for storage
func BuildReport(results []*domain.GenerationResult, duration time.Duration) *domain.GenerationReport {
	report := &domain.GenerationReport{
		Meta: domain.GenerationReportMeta{
			RunID:           uuid.NewString(),
			Targets:         len(results),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Targets: make([]domain.TargetReport, 0, len(results)),
	}

	for _, r := range results {
		sum := sha256.Sum256(r.Unit)
		tests := len(r.Listing.Entries())
		report.Targets = append(report.Targets, domain.TargetReport{
			Name:        r.Target.Name,
			Skeleton:    r.Target.Skeleton,
			Interface:   r.Target.Interface,
			Output:      r.Target.Output,
			Tests:       tests,
			SuiteStarts: r.Listing.SuiteStarts(),
			Suites:      r.Listing.Suites(),
			Bytes:       len(r.Unit),
			SHA256:      hex.EncodeToString(sum[:]),
			Changed:     r.Changed,
		})
		report.Meta.TotalTests += tests
		if r.Changed {
			report.Meta.ChangedOutputs++
		}
	}
	return report
}
