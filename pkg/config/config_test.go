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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/text"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError string
	}{
		{
			name:   "default_config_is_valid",
			config: Default("/tmp/project"),
		},
		{
			name: "missing_project_root",
			config: &Config{
				Groups:       []FileGroup{{Name: "source", Patterns: []string{"*.cs"}}},
				Replacements: []Replacement{{Old: "a", New: "b"}},
			},
			wantError: "project_root is required",
		},
		{
			name: "missing_groups",
			config: &Config{
				ProjectRoot:  "/tmp/project",
				Replacements: []Replacement{{Old: "a", New: "b"}},
			},
			wantError: "at least one file group is required",
		},
		{
			name: "missing_replacements",
			config: &Config{
				ProjectRoot: "/tmp/project",
				Groups:      []FileGroup{{Name: "source", Patterns: []string{"*.cs"}}},
			},
			wantError: "at least one replacement is required",
		},
		{
			name: "group_without_name",
			config: &Config{
				ProjectRoot:  "/tmp/project",
				Groups:       []FileGroup{{Patterns: []string{"*.cs"}}},
				Replacements: []Replacement{{Old: "a", New: "b"}},
			},
			wantError: "name is required",
		},
		{
			name: "group_without_patterns",
			config: &Config{
				ProjectRoot:  "/tmp/project",
				Groups:       []FileGroup{{Name: "source"}},
				Replacements: []Replacement{{Old: "a", New: "b"}},
			},
			wantError: "at least one pattern is required",
		},
		{
			name: "invalid_pattern",
			config: &Config{
				ProjectRoot:  "/tmp/project",
				Groups:       []FileGroup{{Name: "source", Patterns: []string{"[.cs"}}},
				Replacements: []Replacement{{Old: "a", New: "b"}},
			},
			wantError: "invalid pattern",
		},
		{
			name: "replacement_without_old",
			config: &Config{
				ProjectRoot:  "/tmp/project",
				Groups:       []FileGroup{{Name: "source", Patterns: []string{"*.cs"}}},
				Replacements: []Replacement{{New: "b"}},
			},
			wantError: "old is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfig_Validate_DefaultsGroupRoot(t *testing.T) {
	cfg := &Config{
		ProjectRoot:  "/tmp/project",
		Groups:       []FileGroup{{Name: "other", Patterns: []string{"*.md"}}},
		Replacements: []Replacement{{Old: "a", New: "b"}},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".", cfg.Groups[0].Root)
}

func TestDefault_Groups(t *testing.T) {
	cfg := Default("/tmp/project")

	require.Len(t, cfg.Groups, 3)
	assert.Equal(t, FileGroup{Name: "source", Root: "src", Patterns: []string{"*.cs"}}, cfg.Groups[0])
	assert.Equal(t, FileGroup{Name: "markup", Root: "src", Patterns: []string{"*.xaml"}}, cfg.Groups[1])
	assert.Equal(t, FileGroup{Name: "other", Root: ".", Patterns: []string{"*.json", "*.config", "*.xml", "*.md"}}, cfg.Groups[2])
}

// The compiled-in rule set must be ordered longer-before-shorter so no rule
// shadows a later one.
func TestDefault_RuleOrdering(t *testing.T) {
	cfg := Default("/tmp/project")

	rules := make([]text.ReplacementRule, 0, len(cfg.Replacements))
	for _, r := range cfg.Replacements {
		rules = append(rules, text.ReplacementRule{FromText: r.Old, ToText: r.New})
	}

	replacer := text.NewSimpleTextReplacer()
	require.NoError(t, replacer.ValidateRules(rules))
}

func TestConfig_String(t *testing.T) {
	cfg := Default("/tmp/project")
	assert.Equal(t, "Nebula -> TermSnap in /tmp/project", cfg.String())
}
