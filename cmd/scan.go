package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan PATH",
		Short: "List the files a dedup run would consider",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := fsAdapter.ScanTree(m.Path(args[0]), viper.GetStringSlice(excludeConfigKey)...)
			if err != nil {
				return err
			}

			for _, file := range files {
				cmd.Println(string(file))
			}

			cmd.Printf("Total: %d file(s)\n", len(files))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
