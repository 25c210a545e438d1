package text

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements Replacer using sequential literal replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements Replacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// The engine is text-only: binary or misencoded input is a per-file
	// error, not something to substitute through
	if !utf8.Valid(originalContent) {
		return nil, errors.Errorf("content is not valid UTF-8")
	}

	// Create result with original content
	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	// Apply each rule against the accumulating output, so a later rule can
	// match text an earlier rule introduced or left behind
	currentContent := string(originalContent)
	for _, rule := range rules {
		// Skip empty rules
		if rule.FromText == "" {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)

		// Update counts if changed
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += strings.Count(currentContent, rule.FromText)
		}

		currentContent = newContent
	}

	// Update final content
	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements Replacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
	}

	// An earlier, shorter literal that occurs inside a later literal would
	// consume it before the later rule ever runs
	for i, earlier := range rules {
		for j := i + 1; j < len(rules); j++ {
			if strings.Contains(rules[j].FromText, earlier.FromText) {
				return errors.Errorf("rule %d: %q is shadowed by earlier rule %d (%q)",
					j, rules[j].FromText, i, earlier.FromText)
			}
		}
	}
	return nil
}

// TODO(dr.methodical): 🧪 Add benchmarks for large content
