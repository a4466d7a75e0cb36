package usecase

import (
	"regexp"
	"strings"
)

var (
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
	sentenceRe      = regexp.MustCompile(`([^.?!\n]+[.?!])`)
)

// normalizeSummary tidies model output: trailing whitespace before a
// newline is stripped, runs of three or more newlines collapse to two,
// and outer whitespace is trimmed.
func normalizeSummary(text string) string {
	text = trailingSpaceRe.ReplaceAllString(text, "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// extractTitle derives a display title from summary text: the first
// sentence of the first line after leading markdown markers are stripped,
// capped at 200 characters. Falls back to "Untitled" when nothing usable
// remains. Best effort, never fails.
func extractTitle(text string) string {
	cleaned := strings.TrimSpace(strings.TrimLeft(text, "#- *\n\t"))

	firstLine := cleaned
	if i := strings.IndexByte(cleaned, '\n'); i >= 0 {
		firstLine = cleaned[:i]
	}

	candidate := firstLine
	if m := sentenceRe.FindStringSubmatch(firstLine); m != nil {
		candidate = m[1]
	}

	candidate = strings.TrimSpace(candidate)
	candidate = strings.Trim(candidate, "#")
	candidate = strings.Trim(candidate, "-")
	candidate = strings.Trim(candidate, "*")
	candidate = strings.TrimSpace(candidate)

	if runes := []rune(candidate); len(runes) > 200 {
		candidate = string(runes[:200])
	}
	if candidate == "" {
		return "Untitled"
	}
	return candidate
}
