package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)

	dimStyle     = lipgloss.NewStyle().Faint(true)
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// TUI implements UI for interactive terminals. Progress lines are printed as
// they happen; the final duplicate list is shown through a Bubble Tea pager
// when it does not fit on screen.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// ScanStarted prints the scan phase line.
func (p *TUI) ScanStarted(label string) {
	fmt.Fprintf(p.output, "Scanning %s directory...\n", label)
}

// ScanFinished prints the scan result count.
func (p *TUI) ScanFinished(label string, files int) {
	fmt.Fprintf(p.output, "%s\n", dimStyle.Render(fmt.Sprintf("  %d file(s) in %s directory", files, label)))
}

// CompareStarted prints the comparison phase line.
func (p *TUI) CompareStarted(targets int) {
	fmt.Fprintf(p.output, "Comparing %d target file(s)...\n", targets)
}

// DuplicateFound prints a single duplicate pair as it is confirmed.
func (p *TUI) DuplicateFound(pair m.DuplicatePair) {
	fmt.Fprintf(p.output, "%s %s -> %s\n", matchStyle.Render("Duplicate found:"), pair.Target, pair.Reference)
}

// DisplaySummary shows the duplicate list, paginating when it is taller than
// the terminal.
func (p *TUI) DisplaySummary(summary m.RunSummary) error {
	model := newSummaryModel(summary)

	// Probe the terminal so short lists can skip the pager entirely.
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// summaryModel is the Bubble Tea model paging through duplicate pairs.
type summaryModel struct {
	summary  m.RunSummary
	height   int
	width    int
	offset   int
	quitting bool
}

func newSummaryModel(summary m.RunSummary) summaryModel {
	return summaryModel{summary: summary}
}

func (sm summaryModel) Init() tea.Cmd {
	return nil
}

func (sm summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil

	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm summaryModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Only navigation keys are handled here.
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit

	case "down", "j":
		sm.offset = clampOffset(sm.offset+1, sm.maxOffset())
		return sm, nil

	case "up", "k":
		sm.offset = clampOffset(sm.offset-1, sm.maxOffset())
		return sm, nil

	case "g", "home":
		sm.offset = 0
		return sm, nil

	case "G", "end":
		sm.offset = sm.maxOffset()
		return sm, nil

	case "d", "pgdown":
		sm.offset = clampOffset(sm.offset+sm.itemsPerPage(), sm.maxOffset())
		return sm, nil

	case "u", "pgup":
		sm.offset = clampOffset(sm.offset-sm.itemsPerPage(), sm.maxOffset())
		return sm, nil
	}

	return sm, nil
}

func clampOffset(offset, maxOffset int) int {
	if offset < 0 {
		return 0
	}

	if offset > maxOffset {
		return maxOffset
	}

	return offset
}

// itemsPerPage calculates how many pair lines fit on screen.
func (sm summaryModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10 // Default before the first WindowSizeMsg.
	}

	// Reserve space for the header box, the totals section and the
	// navigation footer.
	reserved := 10

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (sm summaryModel) maxOffset() int {
	maxOff := len(sm.summary.Duplicates) - sm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (sm summaryModel) needsPagination() bool {
	if len(sm.summary.Duplicates) == 0 || sm.height == 0 {
		return false
	}

	return len(sm.summary.Duplicates) > sm.itemsPerPage()
}

func (sm summaryModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("dupesweep - duplicate files"))
	b.WriteString("\n\n")

	if len(sm.summary.Duplicates) == 0 {
		b.WriteString("  No duplicates found.\n")
		return b.String()
	}

	sm.renderPairs(&b)
	sm.renderTotals(&b)

	return b.String()
}

func (sm summaryModel) renderPairs(b *strings.Builder) {
	pairs := sm.summary.Duplicates
	needsPagination := sm.needsPagination()

	start := sm.offset

	end := start + sm.itemsPerPage()
	if end > len(pairs) {
		end = len(pairs)
	}

	visible := pairs
	if needsPagination {
		visible = pairs[start:end]
	}

	for _, pair := range visible {
		fmt.Fprintf(b, "  %s -> %s %s\n",
			pair.Target, pair.Reference,
			dimStyle.Render(fmt.Sprintf("(%d bytes)", pair.Size)))
	}

	if needsPagination {
		b.WriteString("\n")

		perPage := sm.itemsPerPage()
		currentPage := (sm.offset / perPage) + 1
		totalPages := (len(pairs) + perPage - 1) / perPage
		fmt.Fprintf(b, "  Page %d/%d | Showing %d-%d of %d\n",
			currentPage, totalPages, start+1, end, len(pairs))
		b.WriteString(dimStyle.Render("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit"))
		b.WriteString("\n")
	}
}

func (sm summaryModel) renderTotals(b *strings.Builder) {
	b.WriteString("\n")

	verb := "reclaimed"
	if sm.summary.DryRun {
		verb = "reclaimable (dry run)"
	}

	fmt.Fprintf(b, "  %s\n", summaryStyle.Render(fmt.Sprintf(
		"%d duplicate(s), %d byte(s) %s",
		len(sm.summary.Duplicates), sm.summary.BytesReclaimable(), verb)))
	fmt.Fprintf(b, "  %s\n", dimStyle.Render(fmt.Sprintf(
		"reference: %d file(s), target: %d file(s)",
		sm.summary.ReferenceFiles, sm.summary.TargetFiles)))
}
