package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"doc_analyzer/internal/analyzer"
	"doc_analyzer/internal/config"
	"doc_analyzer/internal/db"
	"doc_analyzer/internal/logging"
	"doc_analyzer/internal/report"
	"doc_analyzer/internal/sentiment"
	"doc_analyzer/internal/workspace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
	analyzer   *analyzer.Analyzer
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "analyzer <input-file> [output-file]",
		Short: "Text statistics, readability and sentiment for a document",
		Long: `Analyzes a .txt, .pdf or .docx document and reports line, character and
word counts, the most frequent non-stopwords, the Flesch-Kincaid grade, the
average sentence length and the overall sentiment.

The report is printed to stdout, or saved to output-file when one is given
(a .json output-file gets the JSON form).`,
		Args:              usageArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runAnalyze,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default <workspace>/configs/config.yaml)")

	root.AddCommand(newBatchCmd(a), newHistoryCmd(a))
	return root
}

func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: %s", cmd.UseLine())
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		base, err := workspace.DefaultBase()
		if err != nil {
			return err
		}
		path = workspace.At(base).ConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = logging.New(cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	classifier, err := sentiment.Load(cfg, a.logger)
	if err != nil {
		return err
	}
	a.analyzer, err = analyzer.New(
		analyzer.WithLogger(a.logger),
		analyzer.WithClassifier(classifier),
		analyzer.WithTopWords(cfg.Analysis.TopWords),
		analyzer.WithSentimentChars(cfg.Analysis.SentimentChars),
	)
	return err
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	res, err := a.analyzer.Analyze(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	a.recordHistory(res)

	if len(args) == 1 {
		_, err := io.WriteString(a.stdout, report.Format(res))
		return err
	}
	if err := report.Write(args[1], res); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Report saved to %s\n", args[1])
	return nil
}

func (a *app) recordHistory(res *analyzer.Result) {
	if !a.cfg.History.Enabled {
		return
	}
	path, err := a.historyPath(true)
	if err != nil {
		a.logger.Warn("history unavailable", zap.Error(err))
		return
	}
	id, err := db.SaveAnalysis(path, res)
	if err != nil {
		a.logger.Warn("history save failed", zap.String("path", path), zap.Error(err))
		return
	}
	a.logger.Debug("analysis recorded", zap.String("id", id), zap.String("history", path))
}

func (a *app) historyPath(create bool) (string, error) {
	if a.cfg.History.Path != "" {
		return a.cfg.History.Path, nil
	}
	if create {
		layout, err := workspace.EnsureDefault()
		if err != nil {
			return "", err
		}
		return layout.HistoryPath, nil
	}
	base, err := workspace.DefaultBase()
	if err != nil {
		return "", err
	}
	return workspace.At(base).HistoryPath, nil
}

func describe(err error) string {
	var aerr *analyzer.Error
	if errors.As(err, &aerr) && errors.Is(err, analyzer.ErrIO) {
		return fmt.Sprintf("%q cannot be opened.", aerr.Path)
	}
	return err.Error()
}
