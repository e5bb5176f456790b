// Package controller provides output adapters for displaying dedup progress
// and results.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// UI is the interface the workflow reports through. Implementations can use
// different output methods (simple text, TUI pager).
type UI interface {
	// ScanStarted announces that the tree labelled label (reference/target)
	// is about to be scanned.
	ScanStarted(label string)

	// ScanFinished reports how many files the scan produced.
	ScanFinished(label string, files int)

	// CompareStarted announces the comparison phase over the target files.
	CompareStarted(targets int)

	// DuplicateFound reports a single confirmed duplicate pair, in discovery
	// order, before any deletion is attempted for it.
	DuplicateFound(pair m.DuplicatePair)

	// DisplaySummary renders the final run summary.
	DisplaySummary(summary m.RunSummary) error
}

// NewUI picks the pager-backed TUI for interactive terminals and the plain
// text UI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
