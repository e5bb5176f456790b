package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream. It prints one
// line per event and a table summary at the end, suitable for pipes and CI.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// ScanStarted prints the scan phase line.
func (s *SimpleUI) ScanStarted(label string) {
	s.printf("Scanning %s directory...\n", label)
}

// ScanFinished prints the scan result count.
func (s *SimpleUI) ScanFinished(label string, files int) {
	s.printf("Found %d file(s) in %s directory\n", files, label)
}

// CompareStarted prints the comparison phase line.
func (s *SimpleUI) CompareStarted(targets int) {
	s.printf("Comparing %d target file(s)...\n", targets)
}

// DuplicateFound prints a single duplicate pair.
func (s *SimpleUI) DuplicateFound(pair m.DuplicatePair) {
	s.printf("Duplicate found: %s -> %s\n", pair.Target, pair.Reference)
}

// DisplaySummary renders the duplicate table and totals.
func (s *SimpleUI) DisplaySummary(summary m.RunSummary) error {
	if len(summary.Duplicates) == 0 {
		s.printf("No duplicates found.\n")
		return nil
	}

	s.printf("\n%s", renderDuplicateTable(summary))

	if summary.DryRun {
		s.printf("Dry run: no files were deleted.\n")
	} else {
		s.printf("Reclaimed %d byte(s).\n", summary.BytesReclaimable())
	}

	return nil
}

func renderDuplicateTable(summary m.RunSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Reference", "Bytes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, pair := range summary.Duplicates {
		table.Append([]string{string(pair.Target), string(pair.Reference), fmt.Sprintf("%d", pair.Size)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Duplicates %d", len(summary.Duplicates)),
		"",
		fmt.Sprintf("%d", summary.BytesReclaimable()),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
