package ui

import "github.com/mattn/go-runewidth"

// truncateString shortens s to maxLen cells, appending "…" if truncated.
// Emoji and other wide characters count as two cells.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}
