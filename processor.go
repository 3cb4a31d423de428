package strum

import (
	"context"
	"fmt"
	"go/build"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alex/strum/config"
	"github.com/alex/strum/gen"
	"github.com/alex/strum/logger"
	"github.com/alex/strum/parser"
	"github.com/alex/strum/types"
	"github.com/alex/strum/utils"
)

// Process scans and generates with the default configuration.
func Process(ctx context.Context) error {
	return ProcessWithConfig(ctx, config.NewDefaultConfig())
}

// ProcessWithConfig scans and generates with the provided configuration.
func ProcessWithConfig(ctx context.Context, cfg *config.Config) error {
	return ProcessWithContext(ctx, NewProcessContext(cfg))
}

// NewProcessContext builds the run context for a configuration,
// wiring the logger and detecting the module path.
func NewProcessContext(cfg *config.Config) *types.ProcessContext {
	lvl := utils.DerefPtr(cfg.LogLevel, logger.LogLevel{Level: slog.LevelInfo})
	log := logger.NewLogger(lvl.Level)
	return &types.ProcessContext{
		Config:     cfg,
		Logger:     log,
		ModulePath: detectModulePath(),
	}
}

// ProcessWithContext runs the full pipeline: scan, validate, generate.
func ProcessWithContext(ctx context.Context, pctx *types.ProcessContext) error {
	res, err := Scan(pctx)
	if err != nil {
		return err
	}
	if len(res.Enums) == 0 {
		pctx.Logger.Warn("no annotated enums found",
			"patterns", strings.Join(pctx.Config.Scanning.Packages, ", "))
		return nil
	}
	return gen.NewGenerator(res, pctx.Config, pctx.Logger).Generate(ctx)
}

// Scan discovers annotated enums without generating code.
func Scan(pctx *types.ProcessContext) (*types.ProcessResult, error) {
	patterns := pctx.Config.Scanning.Packages
	if len(patterns) == 0 {
		return nil, fmt.Errorf("strum: no packages configured for scanning")
	}
	scanner := parser.NewScanner(pctx.Config, pctx.Logger)
	return scanner.ScanPatterns(patterns...)
}

// detectModulePath tries to detect the module path from go.mod or working directory
func detectModulePath() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Look for go.mod in current directory and parent directories
	dir := wd
	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			if content, err := os.ReadFile(goModPath); err == nil {
				for line := range strings.SplitSeq(string(content), "\n") {
					line = strings.TrimSpace(line)
					if after, ok := strings.CutPrefix(line, "module "); ok {
						return strings.TrimSpace(after)
					}
				}
			}
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached root directory
		}
		dir = parent
	}

	// Fallback: try to infer from GOPATH
	if gopath := build.Default.GOPATH; gopath != "" {
		srcDir := filepath.Join(gopath, "src")
		if rel, err := filepath.Rel(srcDir, wd); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}

	return ""
}
