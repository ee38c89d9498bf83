package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vscope",
	Short: "Video scope analysis engine for color monitoring",
	Long: `vscope — turns video frames and stills into the data structures behind
professional color-monitoring scopes: histogram, waveform, vectorscope
and RGB parade.

Analysis is pure and deterministic; results are written as JSON reports
for scope renderers and batch QC tooling.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"vscope %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[vscope] "+format+"\n", args...)
	}
}
