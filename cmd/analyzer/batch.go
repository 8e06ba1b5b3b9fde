package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doc_analyzer/internal/pipeline"
	"doc_analyzer/internal/report"
	"doc_analyzer/internal/workspace"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		outDir  string
		asJSON  bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Analyze several documents concurrently",
		Long: `Analyzes every file concurrently and saves one report per file in the
workspace reports directory (or --out-dir). A failing file is reported on
stderr and does not stop the others; the exit status is 1 if any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := batchLayout(outDir)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}
			ext := ".txt"
			if asJSON {
				ext = ".json"
			}

			outcomes := pipeline.AnalyzeFiles(cmd.Context(), uniquePaths(args), workers, a.analyzer.Analyze)

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintln(a.stderr, describe(o.Err))
					continue
				}
				a.recordHistory(o.Result)
				dest := layout.ReportPath(o.Path, ext)
				if err := report.Write(dest, o.Result); err != nil {
					failed++
					fmt.Fprintf(a.stderr, "%s: %v\n", o.Path, err)
					continue
				}
				fmt.Fprintf(a.stdout, "Report saved to %s\n", dest)
			}

			a.logger.Info("batch finished",
				zap.Int("documents", len(outcomes)),
				zap.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out-dir", "", "directory for reports (default <workspace>/reports)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON reports")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent analyses (default from config, then CPU count)")
	return cmd
}

func uniquePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		key := filepath.Clean(p)
		if abs, err := filepath.Abs(p); err == nil {
			key = abs
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

func batchLayout(outDir string) (*workspace.Layout, error) {
	if outDir == "" {
		return workspace.EnsureDefault()
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", outDir, err)
	}
	return &workspace.Layout{ReportsDir: outDir}, nil
}
