package sitetext

import "strings"

// NormalizeText drops empty lines from extracted text and rejoins the
// remaining lines with single newlines, without a trailing newline.
// Lines that contain only whitespace are kept; only lines equal to the
// empty string are dropped. NormalizeText is idempotent.
func NormalizeText(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
