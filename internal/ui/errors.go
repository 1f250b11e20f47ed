package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay word-wraps an error to at most maxErrorLines lines
// of maxWidth runes, the first one prefixed with "Error: ". Longer messages
// end with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	words := strings.Fields(err.Error())
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}
	if maxWidth < 10+utf8.RuneCountInString(errorPrefix) {
		maxWidth = 10 + utf8.RuneCountInString(errorPrefix)
	}

	lines := []string{errorPrefix}
	truncated := false
	for _, word := range words {
		last := lines[len(lines)-1]
		sep := " "
		if (len(lines) == 1 && last == errorPrefix) || last == "" {
			sep = ""
		}
		if utf8.RuneCountInString(last)+len(sep)+utf8.RuneCountInString(word) <= maxWidth {
			lines[len(lines)-1] = last + sep + word
			continue
		}
		if len(lines) == maxErrorLines {
			truncated = true
			break
		}
		lines = append(lines, word)
	}

	if truncated {
		last := []rune(lines[len(lines)-1])
		room := maxWidth - utf8.RuneCountInString(truncationMark)
		if len(last) > room {
			last = last[:room]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}
	return strings.Join(lines, "\n")
}
