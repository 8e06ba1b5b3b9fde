package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"doc_analyzer/internal/config"
)

const (
	BaseDirName = "DocAnalyzer"
	HomeEnv     = "DOC_ANALYZER_HOME"
)

type Layout struct {
	Root        string
	ConfigPath  string
	ReportsDir  string
	DataDir     string
	HistoryPath string
}

func DefaultBase() (string, error) {
	if base := os.Getenv(HomeEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, BaseDirName), nil
}

// At describes the workspace rooted at base without touching the disk.
func At(base string) *Layout {
	return &Layout{
		Root:        base,
		ConfigPath:  filepath.Join(base, "configs", "config.yaml"),
		ReportsDir:  filepath.Join(base, "reports"),
		DataDir:     filepath.Join(base, "data"),
		HistoryPath: filepath.Join(base, "data", "history.db"),
	}
}

func EnsureDefault() (*Layout, error) {
	base, err := DefaultBase()
	if err != nil {
		return nil, err
	}
	return EnsureAt(base)
}

func EnsureAt(base string) (*Layout, error) {
	layout := At(base)

	for _, p := range []string{filepath.Dir(layout.ConfigPath), layout.ReportsDir, layout.DataDir} {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	if _, err := os.Stat(layout.ConfigPath); os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(layout.ConfigPath); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	return layout, nil
}
