// Package discover enumerates candidate files for a batch pass.
package discover

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Files recursively enumerates every file under root whose basename matches
// any of the given glob patterns. Order is filesystem traversal order; each
// file is processed independently so order never affects correctness. A
// missing root yields no files, and unreadable entries are skipped.
func Files(ctx context.Context, root string, patterns []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("root", root).Msg("search root does not exist")
			return nil, nil
		}
		return nil, errors.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	var files []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			return nil
		}

		for _, pattern := range patterns {
			matched, merr := doublestar.Match(pattern, d.Name())
			if merr != nil {
				return errors.Errorf("matching pattern %q: %w", pattern, merr)
			}
			if matched {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("walking %s: %w", root, walkErr)
	}

	logger.Debug().Str("root", root).Int("files", len(files)).Msg("discovered files")
	return files, nil
}
