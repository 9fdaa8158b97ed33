package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cbout22/formpatch/internal/config"
	"github.com/cbout22/formpatch/internal/patcher"
)

func runApply(out io.Writer, logger *zap.Logger) error {
	return runApplyWith(config.Default(), ".", patcher.OSFileSystem{}, out, logger)
}

// runApplyWith is the testable core of the root command. spec.Path is
// resolved against rootDir.
func runApplyWith(spec config.PatchSpec, rootDir string, fs patcher.FileSystem, out io.Writer, logger *zap.Logger) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	target := filepath.Join(rootDir, spec.Path)
	logger.Debug("applying patch", zap.String("target", target))

	outcome, err := patcher.New(fs, logger).Apply(target, spec.Search, spec.Replace)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, outcome)
	return nil
}
