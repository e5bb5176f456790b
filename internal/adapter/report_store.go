package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// reportFileName is the file written into the output directory.
const reportFileName = "duplicates.yaml"

// ReportStore persists run reports for later inspection.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) error
}

type yamlReportStore struct{}

// NewReportStore returns a ReportStore that writes YAML files.
func NewReportStore() ReportStore {
	return &yamlReportStore{}
}

// SaveReport writes the report as duplicates.yaml under dir, creating the
// directory if needed.
func (s *yamlReportStore) SaveReport(dir m.Path, report m.RunReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
