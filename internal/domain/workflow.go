package domain

import (
	"fmt"
	"log/slog"
	"time"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	"dupesweep.dev/pkg/dupesweep/internal/controller"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// DedupArgs carries everything one dedup invocation needs.
type DedupArgs struct {
	Reference m.Path
	Target    m.Path
	DryRun    bool
	Exclude   []string
	Report    bool
	ReportDir m.Path
}

// Workflow drives the dedup pipeline end to end.
type Workflow interface {
	Dedup(args DedupArgs) error
}

type dedupWorkflow struct {
	fs      adapter.TreeFS
	reports adapter.ReportStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fs adapter.TreeFS, reports adapter.ReportStore, ui controller.UI) Workflow {
	return &dedupWorkflow{
		fs:      fs,
		reports: reports,
		ui:      ui,
	}
}

// Dedup scans both trees, pairs up exact duplicates and removes the target
// copies unless the run is a dry run. The pipeline is strictly sequential:
// scan reference, scan target, index, compare, delete. The first I/O failure
// anywhere aborts the run, including remaining deletions.
func (w *dedupWorkflow) Dedup(args DedupArgs) error {
	w.ui.ScanStarted("reference")

	referenceFiles, err := w.fs.ScanTree(args.Reference, args.Exclude...)
	if err != nil {
		slog.Error("reference scan failed", "root", args.Reference, "error", err)
		return fmt.Errorf("scan reference tree: %w", err)
	}

	w.ui.ScanFinished("reference", len(referenceFiles))
	w.ui.ScanStarted("target")

	targetFiles, err := w.fs.ScanTree(args.Target, args.Exclude...)
	if err != nil {
		slog.Error("target scan failed", "root", args.Target, "error", err)
		return fmt.Errorf("scan target tree: %w", err)
	}

	w.ui.ScanFinished("target", len(targetFiles))
	w.ui.CompareStarted(len(targetFiles))

	duplicates, err := FindDuplicates(referenceFiles, targetFiles)
	if err != nil {
		slog.Error("comparison failed", "error", err)
		return fmt.Errorf("compare files: %w", err)
	}

	for _, pair := range duplicates {
		w.ui.DuplicateFound(pair)

		if args.DryRun {
			continue
		}

		if err := w.fs.Remove(pair.Target); err != nil {
			slog.Error("delete failed", "path", pair.Target, "error", err)
			return fmt.Errorf("delete duplicate: %w", err)
		}

		slog.Info("deleted duplicate", "target", pair.Target, "reference", pair.Reference)
	}

	summary := m.RunSummary{
		ReferenceRoot:  args.Reference,
		TargetRoot:     args.Target,
		ReferenceFiles: len(referenceFiles),
		TargetFiles:    len(targetFiles),
		Duplicates:     duplicates,
		DryRun:         args.DryRun,
	}

	if err := w.ui.DisplaySummary(summary); err != nil {
		return fmt.Errorf("display summary: %w", err)
	}

	if args.Report {
		report := m.RunReport{
			GeneratedAt: time.Now(),
			Reference:   args.Reference,
			Target:      args.Target,
			DryRun:      args.DryRun,
			Duplicates:  duplicates,
		}

		if err := w.reports.SaveReport(args.ReportDir, report); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	return nil
}
