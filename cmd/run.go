package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dupesweep.dev/pkg/dupesweep/internal/domain"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

var runDryRunFlag bool
var runReportFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run REFERENCE TARGET",
		Short: "Find and delete target files duplicated in the reference tree",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Dedup(domain.DedupArgs{
				Reference: m.Path(args[0]),
				Target:    m.Path(args[1]),
				DryRun:    viper.GetBool(dryRunConfigKey),
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Report:    viper.GetBool(reportConfigKey),
				ReportDir: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&runDryRunFlag, dryRunFlagName, "n", viper.GetBool(dryRunConfigKey), "report duplicates without deleting anything")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), dryRunConfigKey)

	cmd.Flags().BoolVar(&runReportFlag, reportFlagName, viper.GetBool(reportConfigKey), "write a YAML run report into the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)
}
