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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes operations
type Runner struct {
	async bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(async bool) *Runner {
	return &Runner{
		async: async,
	}
}

// 🏃 Run executes an operation
func (r *Runner) Run(ctx context.Context, op Operation) error {
	zerolog.Ctx(ctx).Debug().
		Str("operation", op.Name()).
		Bool("async", r.async).
		Msg("running operation")

	if r.async {
		return r.runAsync(ctx, op)
	}
	return r.runSync(ctx, op)
}

// 🔄 runSync runs an operation synchronously
func (r *Runner) runSync(ctx context.Context, op Operation) error {
	return op.Execute(ctx)
}

// ⚡ runAsync runs an operation on a background goroutine, honoring context
// cancellation while it runs
func (r *Runner) runAsync(ctx context.Context, op Operation) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := op.Execute(ctx); err != nil {
			return errors.Errorf("executing %s operation: %w", op.Name(), err)
		}
		return nil
	})

	return g.Wait()
}
