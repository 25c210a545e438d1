package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent   = 2  // spaces to indent per-file entries
	tallyIndent  = 3  // spaces to indent summary tally lines
	dividerWidth = 60 // width of the summary divider
)

var divider = strings.Repeat("=", dividerWidth)

// 🎯 FormatChanged formats a rewritten file line for display
func FormatChanged(relPath string) string {
	return fmt.Sprintf("%s%s %s",
		strings.Repeat(" ", fileIndent),
		color.GreenString("[OK]"),
		relPath,
	)
}

// 🎯 FormatError formats a failed file line for display
func FormatError(path string, err error) string {
	return fmt.Sprintf("%s %s: %v",
		color.RedString("Error processing"),
		path,
		err,
	)
}

// 🎯 FormatTally formats one group's summary line
func FormatTally(tally GroupTally) string {
	return fmt.Sprintf("%s%s files changed: %d/%d",
		strings.Repeat(" ", tallyIndent),
		tally.Name,
		tally.Changed,
		tally.Total,
	)
}
