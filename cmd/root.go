// Package cmd provides the root command and CLI setup for dupesweep.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	"dupesweep.dev/pkg/dupesweep/internal/controller"
	"dupesweep.dev/pkg/dupesweep/internal/domain"
)

var fsAdapter adapter.TreeFS
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters scanned files by base name.
var excludePatterns []string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalTreeFS()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const rootLongDescription = `Dupesweep removes files from a target directory tree that are exact,
byte-for-byte copies of same-named files in a reference tree.

Both trees are scanned recursively; symbolic links are never followed.
A file is only deleted after its content has been compared block by
block against a reference file carrying the same name.`

const runLongDescription = `Scan the reference and target trees, report every target file whose
content exactly matches a same-named reference file, and delete the
target copies. With --dry-run the duplicates are reported but nothing
is deleted.`

const scanLongDescription = `List the regular files a dedup run would consider under the given
root, applying the same symlink and exclude-pattern rules as run.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dupesweep",
		Short: "Reference-directed duplicate file removal",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files whose name matches regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log scan and compare decisions at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
