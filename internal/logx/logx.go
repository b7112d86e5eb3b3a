// Package logx builds the dashboard logger. The TUI owns the
// terminal, so log output goes to a file instead of stderr.
package logx

import "go.uber.org/zap"

// New returns a logger writing JSON lines to path. An empty path
// disables logging.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
