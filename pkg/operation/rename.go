// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/discover"
	"github.com/walteh/renamerc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 FileResult is the typed outcome of one rewrite attempt. Failures are
// values here, never panics: a bad file must not abort the batch.
type FileResult struct {
	Path         string // File path as discovered
	Changed      bool   // Whether the file was rewritten
	Replacements int    // Substitutions made in this file
	Err          error  // Read, decode, or write failure, if any
}

// 🏭 NewRenameOperation creates the batch rename operation, converting the
// configured replacements into an ordered rule set and validating it
func NewRenameOperation(opts Options) (Operation, error) {
	if err := opts.validate(); err != nil {
		return nil, errors.Errorf("invalid options: %w", err)
	}

	rules := make([]text.ReplacementRule, 0, len(opts.Config.Replacements))
	for _, r := range opts.Config.Replacements {
		rules = append(rules, text.ReplacementRule{FromText: r.Old, ToText: r.New})
	}
	if err := opts.Replacer.ValidateRules(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &renameOperation{
		opts:  opts,
		rules: rules,
	}, nil
}

// 📦 renameOperation implements the rename operation
type renameOperation struct {
	opts  Options
	rules []text.ReplacementRule
}

// Name implements Operation.Name
func (op *renameOperation) Name() string {
	return "rename"
}

// 🏃 Execute runs one pass per file group, in order. Per-file failures are
// reported and contained; only discovery failures abort the batch.
func (op *renameOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	cfg := op.opts.Config

	for _, group := range cfg.Groups {
		root := filepath.Join(cfg.ProjectRoot, group.Root)
		files, err := discover.Files(ctx, root, group.Patterns)
		if err != nil {
			return errors.Errorf("discovering %s files: %w", group.Name, err)
		}

		op.opts.Reporter.StartGroup(ctx, group.Name, len(files))

		for _, path := range files {
			result := op.processFile(ctx, path)
			switch {
			case result.Err != nil:
				op.opts.Reporter.FileFailed(ctx, path, result.Err)
			case result.Changed:
				op.opts.Reporter.FileChanged(ctx, op.relPath(path))
			default:
				logger.Debug().Str("file", path).Msg("file unchanged")
			}
		}
	}

	banner := fmt.Sprintf("%s -> %s conversion complete!", cfg.OldName, cfg.NewName)
	op.opts.Reporter.Summary(ctx, banner)
	return nil
}

// 📄 processFile reads one file, applies the rule set, and rewrites the file
// in place only when the content changed. The rewrite is a full replace, not
// a patch, and keeps the original file mode.
func (op *renameOperation) processFile(ctx context.Context, path string) FileResult {
	result := FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		result.Err = errors.Errorf("stat file: %w", err)
		return result
	}

	f, err := os.Open(path)
	if err != nil {
		result.Err = errors.Errorf("opening file: %w", err)
		return result
	}

	res, replaceErr := op.opts.Replacer.ReplaceText(ctx, f, op.rules)
	closeErr := f.Close()
	if replaceErr != nil {
		result.Err = replaceErr
		return result
	}
	if closeErr != nil {
		result.Err = errors.Errorf("closing file: %w", closeErr)
		return result
	}

	result.Replacements = res.ReplacementCount
	if !res.WasModified {
		return result
	}

	if err := os.WriteFile(path, res.ModifiedContent, info.Mode()); err != nil {
		result.Err = errors.Errorf("writing file: %w", err)
		return result
	}

	result.Changed = true
	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Int("replacements", res.ReplacementCount).
		Msg("file rewritten in place")
	return result
}

// 🔗 relPath renders a path relative to the project root for display
func (op *renameOperation) relPath(path string) string {
	rel, err := filepath.Rel(op.opts.Config.ProjectRoot, path)
	if err != nil {
		return path
	}
	return rel
}
