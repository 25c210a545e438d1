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

package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// 📊 GroupTally holds changed/total counts for one file group
type GroupTally struct {
	Name    string // Group name
	Changed int    // Files rewritten in this group
	Total   int    // Files discovered in this group
}

// 🎯 Reporter renders batch progress to the console and mirrors it to zerolog.
// Console output is the user contract; zerolog carries the debug detail.
type Reporter struct {
	console io.Writer

	mu      sync.Mutex
	tallies []GroupTally
	errors  int
}

// 🏭 NewReporter creates a new reporter writing to the given console
func NewReporter(console io.Writer) *Reporter {
	return &Reporter{
		console: console,
	}
}

// 📝 StartGroup begins a new file group pass and prints its discovered count
func (r *Reporter) StartGroup(ctx context.Context, name string, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Groups after the first are separated by a blank line
	if len(r.tallies) > 0 {
		fmt.Fprintln(r.console)
	}
	r.tallies = append(r.tallies, GroupTally{Name: name, Total: total})

	fmt.Fprintf(r.console, "Processing %d %s files...\n", total, name)

	zerolog.Ctx(ctx).Debug().
		Str("group", name).
		Int("files", total).
		Msg("starting file group")
}

// 📝 FileChanged records and prints a rewritten file, path relative to the
// project root
func (r *Reporter) FileChanged(ctx context.Context, relPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.tallies) == 0 {
		// Changed file outside a group pass would be a caller bug
		zerolog.Ctx(ctx).Warn().Str("file", relPath).Msg("file change reported outside a group")
		return
	}
	r.tallies[len(r.tallies)-1].Changed++

	fmt.Fprintln(r.console, FormatChanged(relPath))

	zerolog.Ctx(ctx).Info().
		Str("file", relPath).
		Msg("file rewritten")
}

// 📝 FileFailed records and prints a file that could not be processed. The
// failure is contained here: it counts toward total, never toward changed.
func (r *Reporter) FileFailed(ctx context.Context, path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors++

	fmt.Fprintln(r.console, FormatError(path, err))

	zerolog.Ctx(ctx).Error().
		Err(err).
		Str("file", path).
		Msg("file processing failed")
}

// 📝 Summary prints the final summary block: divider, completion banner,
// per-group counts, and the total
func (r *Reporter) Summary(ctx context.Context, banner string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, tally := range r.tallies {
		total += tally.Changed
	}

	fmt.Fprintln(r.console)
	fmt.Fprintln(r.console, divider)
	fmt.Fprintf(r.console, "[DONE] %s\n", banner)
	fmt.Fprintln(r.console, divider)
	for _, tally := range r.tallies {
		fmt.Fprintln(r.console, FormatTally(tally))
	}
	fmt.Fprintf(r.console, "   Total: %d files\n", total)

	zerolog.Ctx(ctx).Info().
		Int("changed", total).
		Int("errors", r.errors).
		Msg("batch complete")
}

// 📈 Tallies returns a copy of the per-group counts recorded so far
func (r *Reporter) Tallies() []GroupTally {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]GroupTally, len(r.tallies))
	copy(out, r.tallies)
	return out
}

// 📈 Errors returns the number of files that failed processing
func (r *Reporter) Errors() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.errors
}
