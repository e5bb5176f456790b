package controller

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

func sampleSummary(pairs int) m.RunSummary {
	summary := m.RunSummary{
		ReferenceFiles: pairs + 3,
		TargetFiles:    pairs + 1,
	}

	for i := 0; i < pairs; i++ {
		summary.Duplicates = append(summary.Duplicates, m.DuplicatePair{
			Target:    m.Path(fmt.Sprintf("/t/file%d", i)),
			Reference: m.Path(fmt.Sprintf("/r/file%d", i)),
			Size:      int64(i + 1),
		})
	}

	return summary
}

func TestSummaryModel_ViewListsPairs(t *testing.T) {
	model := newSummaryModel(sampleSummary(3))

	view := model.View()
	assert.Contains(t, view, "/t/file0 -> /r/file0")
	assert.Contains(t, view, "/t/file2 -> /r/file2")
	assert.Contains(t, view, "3 duplicate(s)")
}

func TestSummaryModel_EmptySummary(t *testing.T) {
	model := newSummaryModel(sampleSummary(0))

	assert.Contains(t, model.View(), "No duplicates found.")
}

func TestSummaryModel_Pagination(t *testing.T) {
	model := newSummaryModel(sampleSummary(100))

	// Without a known height there is nothing to paginate against.
	assert.False(t, model.needsPagination())

	model.height = 20
	require.True(t, model.needsPagination())

	perPage := model.itemsPerPage()
	assert.Equal(t, 10, perPage)
	assert.Equal(t, 100-perPage, model.maxOffset())

	view := model.View()
	assert.Contains(t, view, "Page 1/")
	assert.NotContains(t, view, "/t/file99 ")
}

func TestSummaryModel_OffsetClamping(t *testing.T) {
	assert.Equal(t, 0, clampOffset(-5, 10))
	assert.Equal(t, 10, clampOffset(42, 10))
	assert.Equal(t, 7, clampOffset(7, 10))
}

func TestTUI_DisplaySummaryPrintsWhenShort(t *testing.T) {
	buf := &bytes.Buffer{}
	ui := NewTUI(buf)

	require.NoError(t, ui.DisplaySummary(sampleSummary(2)))

	out := buf.String()
	assert.Contains(t, out, "/t/file0")
	assert.Contains(t, out, "2 duplicate(s)")
}
