package splitter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultDirPermissions for created output directories
const DefaultDirPermissions = 0755

// resolveInputs checks that the source is a regular file and makes sure the
// output directory exists. The source is checked first so that a bad input
// never leaves a directory behind.
func resolveInputs(opts Options) error {
	info, err := os.Stat(opts.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrInputNotFound, opts.Input)
		}
		return fmt.Errorf("%w: %q: %w", ErrInputNotFound, opts.Input, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %q", ErrInputNotAFile, opts.Input)
	}

	if err := os.MkdirAll(opts.OutputDir, DefaultDirPermissions); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutputDirCreateFailed, opts.OutputDir, err)
	}
	return nil
}
