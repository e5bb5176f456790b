package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

func TestReportStore_SaveReport(t *testing.T) {
	store := NewReportStore()

	dir := filepath.Join(t.TempDir(), "reports")
	report := m.RunReport{
		GeneratedAt: time.Now().UTC(),
		Reference:   "/data/ref",
		Target:      "/data/target",
		DryRun:      true,
		Duplicates: []m.DuplicatePair{
			{Target: "/data/target/a", Reference: "/data/ref/a", Size: 42},
		},
	}

	require.NoError(t, store.SaveReport(m.Path(dir), report))

	data, err := os.ReadFile(filepath.Join(dir, reportFileName))
	require.NoError(t, err)

	var loaded m.RunReport
	require.NoError(t, yaml.Unmarshal(data, &loaded))

	assert.Equal(t, report.Reference, loaded.Reference)
	assert.Equal(t, report.Target, loaded.Target)
	assert.True(t, loaded.DryRun)
	require.Len(t, loaded.Duplicates, 1)
	assert.Equal(t, int64(42), loaded.Duplicates[0].Size)
}
