// Package extract implements the heuristics that turn a raw OCR transcription
// of a government ID into structured identity fields. Every extractor is a
// pure function that degrades to "not found" instead of failing; OCR text is
// noisy and partial extraction must never abort the pipeline.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractIDNumber scans text for a known document-number shape and returns
// the normalized number together with its classified type ("Aadhaar" or
// "PAN"). Aadhaar shapes take priority over PAN.
func ExtractIDNumber(text string) (number, idType string, ok bool) {
	for _, p := range idPatterns {
		candidate := text
		if p.uppercase {
			candidate = strings.ToUpper(text)
		}
		match := p.re.FindString(candidate)
		if match == "" {
			continue
		}
		if p.stripSpace {
			match = spaceRe.ReplaceAllString(match, "")
		}
		return match, p.label, true
	}
	return "", "", false
}

// ExtractDateOfBirth returns the first date-shaped substring found by the
// ordered pattern table.
func ExtractDateOfBirth(text string) (string, bool) {
	for _, p := range dobPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if p.group > 0 && p.group < len(m) {
			return m[p.group], true
		}
		return m[0], true
	}
	return "", false
}

// ExtractName looks for a line carrying a name keyword; the candidate is the
// text after a colon on that line, or the following line. Candidates shorter
// than 3 characters are skipped. When no keyword line matches, the first of
// the leading five lines whose first two words are capitalized is used.
func ExtractName(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if !containsAnyKeyword(line, nameKeywords) {
			continue
		}
		if idx := strings.Index(line, ":"); idx >= 0 {
			if candidate := strings.TrimSpace(line[idx+1:]); len(candidate) > 2 {
				return candidate, true
			}
		} else if i+1 < len(lines) {
			if candidate := strings.TrimSpace(lines[i+1]); len(candidate) > 2 {
				return candidate, true
			}
		}
	}

	// Fallback: a header-looking line near the top of the card.
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, raw := range lines[:limit] {
		line := strings.TrimSpace(raw)
		words := strings.Fields(line)
		if len(words) >= 2 && startsUpper(words[0]) && startsUpper(words[1]) {
			return line, true
		}
	}

	return "", false
}

// ExtractAddress finds the first line containing an address keyword and joins
// up to the three following non-empty lines with ", ". Scanning stops after
// the first keyword hit.
func ExtractAddress(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	for i, raw := range lines {
		if !containsAnyKeyword(strings.TrimSpace(raw), addressKeywords) {
			continue
		}
		var parts []string
		for j := i + 1; j < len(lines) && j < i+4; j++ {
			if line := strings.TrimSpace(lines[j]); line != "" {
				parts = append(parts, line)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	}

	return "", false
}

func containsAnyKeyword(line string, keywords []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
