package statement

import "strings"

// CleanLines strips configured noise from one page of raw statement text and
// splits it into lines. Substring deletions are applied in list order before
// splitting; empty lines and lines containing any exclusion substring are
// dropped. The function is pure: same input, same output, no side effects.
func CleanLines(text string, removeWords, removeLinesWith []string) []string {
	for _, word := range removeWords {
		text = strings.ReplaceAll(text, word, "")
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" || containsAny(line, removeLinesWith) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func containsAny(line string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

// TrimTail returns the prefix of lines strictly before the first exact match
// of stopWord. The second return value reports whether the stop word was
// found; callers treat a miss as a hard parse failure because it means the
// configured rules do not fit the document.
func TrimTail(lines []string, stopWord string) ([]string, bool) {
	for i, line := range lines {
		if line == stopWord {
			return lines[:i], true
		}
	}
	return nil, false
}
