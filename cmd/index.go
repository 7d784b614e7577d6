package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the index from the document directory and report stats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Indexing %s...\n", a.cfg.DocDir)
		start := time.Now()

		stats, err := a.svc.Rebuild(cmd.Context())
		elapsed := time.Since(start)

		if stats != nil {
			fmt.Fprintf(out, "\nDone in %s\n", elapsed.Round(time.Millisecond))
			fmt.Fprintf(out, "  Files:   %d total, %d indexed, %d skipped\n",
				stats.FilesTotal, stats.FilesIndexed, stats.FilesSkipped)
			fmt.Fprintf(out, "  Chunks:  %d\n", stats.ChunksTotal)
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
