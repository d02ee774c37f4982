// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/huangsam/sdrfbench/internal/contract"
	"golang.org/x/term"
)

// getMaxTableValueWidth calculates the maximum width for value-set cells in
// table output based on terminal width and table configuration.
func getMaxTableValueWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 60 // Rank + Group + Column + P + R + F1 + Label with borders/padding

	// The detail view splits the remaining space between two value-set columns
	available := (termWidth - baseWidth) / 2
	if available < 15 {
		// Minimum reasonable value width
		return 15
	}
	if available > 60 {
		// Maximum value width to prevent overly long cells
		return 60
	}
	return available
}
