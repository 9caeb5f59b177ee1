// Diagnostic tool for HDF5 datatype bindings
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-h5t/h5t"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "h5tdiag",
		Short: "Inspect HDF5 datatype tags and encoded datatype messages",
		Long: `h5tdiag prints the tag tables that map HDF5 datatype enumerations to
their Go tags, and decodes datatype messages into their properties.

Settings are read from h5tdiag.yaml in the working directory and from
H5TDIAG_VERBOSE, H5TDIAG_LOG_LEVEL and H5TDIAG_COLOR.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(".", cmd.Flags())
			if err != nil {
				return err
			}
			cfg.applyColor()
			if !cfg.Verbose {
				return nil
			}
			l, err := cfg.logger()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			h5t.SetLogger(l)
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log datatype lifecycle events")

	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(describeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
