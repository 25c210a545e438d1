package text

import (
	"context"
	"io"
)

// ReplacementRule defines a single literal text replacement. Rules are always
// applied as an ordered set: each rule rewrites the output of the previous
// one, so longer, more specific literals must come before shorter ones that
// share a substring with them.
type ReplacementRule struct {
	// FromText is the literal to search for (exact substring match, no regex)
	FromText string

	// ToText is the replacement text
	ToText string
}

// ReplacementResult contains the results of applying a rule set to content
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the total number of substitutions made
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// Replacer defines the interface for text replacement operations
type Replacer interface {
	// ReplaceText applies an ordered rule set to the content.
	// Returns a ReplacementResult containing the modified content and metadata.
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that the rule set is well formed and well ordered
	ValidateRules(rules []ReplacementRule) error
}
