// Package logging builds the debug logger. gitline renders into a shell
// prompt, so nothing may ever reach stdout or stderr: logs either go to a
// file or nowhere.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/xvierd/gitline/internal/config"
	"go.uber.org/zap"
)

// New returns a logger for the given debug settings. With debugging off it
// is a no-op logger; otherwise it writes JSON lines to cfg.File, or to a
// freshly named file under the state directory when no path is configured.
func New(cfg config.DebugConfig) (*zap.Logger, error) {
	if !cfg.Enabled && os.Getenv("GITLINE_DEBUG") != "1" {
		return zap.NewNop(), nil
	}

	logPath := cfg.File
	if logPath == "" {
		logDir, err := stateDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get log directory: %w", err)
		}
		logPath = filepath.Join(logDir, uuid.New().String()+".log")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	zapCfg.OutputPaths = []string{logPath}
	zapCfg.ErrorOutputPaths = []string{logPath}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// stateDir returns the OS-specific directory for log files.
func stateDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "gitline"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "gitline"), nil
	default:
		return filepath.Join(homeDir, ".gitline", "logs"), nil
	}
}
