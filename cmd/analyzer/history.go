package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"doc_analyzer/internal/db"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously recorded analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := a.historyPath(false)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintln(a.stdout, "No analyses recorded.")
				return nil
			}
			entries, err := db.ListAnalyses(path, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(a.stdout, "No analyses recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ANALYZED\tSENTIMENT\tWORDS\tGRADE\tSOURCE")
			for _, e := range entries {
				r := e.Result
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
					humanize.Time(r.AnalyzedAt),
					r.SentimentLabel,
					humanize.Comma(int64(r.TotalWords)),
					r.ReadingLevel,
					r.SourcePath)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			total, err := db.CountRows(path, "analyses")
			if err != nil {
				return err
			}
			if total > len(entries) {
				fmt.Fprintf(a.stdout, "Showing %d of %d analyses.\n", len(entries), total)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to list (0 for all)")
	return cmd
}
