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

package config

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Replacement represents a literal string replacement applied to files
type Replacement struct {
	Old string // Original string to replace
	New string // New string to use
}

// 📂 FileGroup represents a named category of files processed as one pass
type FileGroup struct {
	Name     string   // Group name used in progress output and the summary
	Root     string   // Search root, relative to ProjectRoot
	Patterns []string // Basename glob patterns (e.g. "*.cs")
}

// 📚 Config represents the complete run configuration
type Config struct {
	ProjectRoot  string        // Project root; changed paths are printed relative to it
	OldName      string        // Name being replaced (used in the summary banner)
	NewName      string        // Name replacing it
	Groups       []FileGroup   // File groups, processed in order
	Replacements []Replacement // Ordered replacement rule set
	Async        bool          // Whether to run the batch on a background goroutine
}

// 🏭 Default returns the compiled-in configuration: the Nebula -> TermSnap
// rule set, ordered from longer patterns to shorter ones. Order matters: each
// rule rewrites the output of the previous one.
func Default(projectRoot string) *Config {
	return &Config{
		ProjectRoot: projectRoot,
		OldName:     "Nebula",
		NewName:     "TermSnap",
		Groups: []FileGroup{
			{Name: "source", Root: "src", Patterns: []string{"*.cs"}},
			{Name: "markup", Root: "src", Patterns: []string{"*.xaml"}},
			{Name: "other", Root: ".", Patterns: []string{"*.json", "*.config", "*.xml", "*.md"}},
		},
		Replacements: []Replacement{
			// Namespace declarations
			{Old: "namespace Nebula", New: "namespace TermSnap"},
			{Old: "using Nebula", New: "using TermSnap"},

			// XAML namespace declaration
			{Old: `xmlns:local="clr-namespace:Nebula`, New: `xmlns:local="clr-namespace:TermSnap`},

			// Pack URI resource paths
			{Old: "pack://application:,,,/Nebula;component", New: "pack://application:,,,/TermSnap;component"},

			// String literals, full name before short name
			{Old: `"Nebula Terminal"`, New: `"TermSnap"`},
			{Old: "'Nebula Terminal'", New: "'TermSnap'"},
			{Old: `"Nebula"`, New: `"TermSnap"`},
			{Old: "'Nebula'", New: "'TermSnap'"},

			// IPC pipe name
			{Old: "Nebula_MCP", New: "TermSnap_MCP"},

			// Namespace prefix
			{Old: "Nebula.", New: "TermSnap."},

			// Windows and Unix paths
			{Old: `\Nebula\`, New: `\TermSnap\`},
			{Old: "/Nebula/", New: "/TermSnap/"},

			// Comments
			{Old: "# Nebula", New: "# TermSnap"},
			{Old: "// Nebula", New: "// TermSnap"},
		},
	}
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.ProjectRoot == "" {
		return errors.Errorf("project_root is required")
	}
	if len(cfg.Groups) == 0 {
		return errors.Errorf("at least one file group is required")
	}
	if len(cfg.Replacements) == 0 {
		return errors.Errorf("at least one replacement is required")
	}

	for i, group := range cfg.Groups {
		if group.Name == "" {
			return errors.Errorf("group %d: name is required", i)
		}
		if len(group.Patterns) == 0 {
			return errors.Errorf("group %q: at least one pattern is required", group.Name)
		}
		for _, pattern := range group.Patterns {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Errorf("group %q: invalid pattern %q", group.Name, pattern)
			}
		}
	}

	for i, r := range cfg.Replacements {
		if r.Old == "" {
			return errors.Errorf("replacement %d: old is required", i)
		}
	}

	// Clean up paths
	cfg.ProjectRoot = filepath.Clean(cfg.ProjectRoot)
	for i := range cfg.Groups {
		if cfg.Groups[i].Root == "" {
			cfg.Groups[i].Root = "."
		}
		cfg.Groups[i].Root = filepath.Clean(cfg.Groups[i].Root)
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return cfg.OldName + " -> " + cfg.NewName + " in " + cfg.ProjectRoot
}
