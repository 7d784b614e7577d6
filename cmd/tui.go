package cmd

import (
	"fmt"
	"io"
	"os"

	"docsearch/internal/tui"

	"github.com/spf13/cobra"
)

var flagLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search the docs interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The alt screen owns the terminal, so logs must not reach stderr.
		logw, closeLog, err := tuiLogWriter(flagLogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		a, err := setupWithLog(logw)
		if err != nil {
			return err
		}
		return tui.Run(tui.Config{Service: a.svc})
	},
}

// tuiLogWriter opens path for appending, or discards logs when path is empty.
func tuiLogWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

func init() {
	tuiCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (default: discard)")
	rootCmd.AddCommand(tuiCmd)
}
