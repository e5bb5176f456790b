package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dupesweep.dev/pkg/dupesweep/internal/domain"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// fakeWorkflow captures the args the run command builds.
type fakeWorkflow struct {
	args   domain.DedupArgs
	called bool
	err    error
}

func (f *fakeWorkflow) Dedup(args domain.DedupArgs) error {
	f.args = args
	f.called = true

	return f.err
}

func newTestRoot(children ...*cobra.Command) *cobra.Command {
	root := baseRootCmd()
	root.PersistentPreRun = nil
	configureRootFlags(root)

	for _, child := range children {
		root.AddCommand(child)
	}

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	return root
}

func swapWorkflow(t *testing.T, replacement domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = replacement
	t.Cleanup(func() { workflow = original })
}

func TestRunCmd_Defaults(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	root := newTestRoot(newRunCmd())
	root.SetArgs([]string{"run", "/ref", "/target"})

	require.NoError(t, root.Execute())
	require.True(t, fake.called)

	assert.Equal(t, m.Path("/ref"), fake.args.Reference)
	assert.Equal(t, m.Path("/target"), fake.args.Target)
	assert.False(t, fake.args.DryRun)
	assert.False(t, fake.args.Report)
}

func TestRunCmd_DryRunFlag(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	root := newTestRoot(newRunCmd())
	root.SetArgs([]string{"run", "-n", "/ref", "/target"})

	require.NoError(t, root.Execute())
	assert.True(t, fake.args.DryRun)
}

func TestRunCmd_ReportAndOutputFlags(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	root := newTestRoot(newRunCmd())
	root.SetArgs([]string{"run", "--report", "-o", "custom-reports", "/ref", "/target"})

	require.NoError(t, root.Execute())
	assert.True(t, fake.args.Report)
	assert.Equal(t, m.Path("custom-reports"), fake.args.ReportDir)
}

func TestRunCmd_ExcludePatterns(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	root := newTestRoot(newRunCmd())
	root.SetArgs([]string{"run", "-x", `^generated_`, "-x", `\.bak$`, "/ref", "/target"})

	require.NoError(t, root.Execute())
	assert.Equal(t, []string{`^generated_`, `\.bak$`}, fake.args.Exclude)
}

func TestRunCmd_RequiresTwoArgs(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	root := newTestRoot(newRunCmd())
	root.SetArgs([]string{"run", "/only-one"})

	require.Error(t, root.Execute())
	assert.False(t, fake.called)
}

func TestRunCmd_PropagatesWorkflowError(t *testing.T) {
	fake := &fakeWorkflow{err: errors.New("scan reference tree: permission denied")}
	swapWorkflow(t, fake)

	root := newTestRoot(newRunCmd())
	root.SetArgs([]string{"run", "/ref", "/target"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run REFERENCE TARGET", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup(dryRunFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(reportFlagName))
}
