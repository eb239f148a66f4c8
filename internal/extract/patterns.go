package extract

import (
	"regexp"

	"github.com/somu559/sineorcitizenregMod/internal/models"
)

// idPattern describes one document-number shape. Patterns are tried in
// declaration order and the first match wins, so Aadhaar shapes must stay
// ahead of PAN. New document formats are added here, not in control flow.
type idPattern struct {
	label      string
	re         *regexp.Regexp
	uppercase  bool // match against the uppercased text
	stripSpace bool // remove internal grouping spaces from the match
}

var idPatterns = []idPattern{
	// Aadhaar: 12 digits, first digit 2-9, optionally grouped 4-4-4
	{label: models.IDTypeAadhaar, re: regexp.MustCompile(`[2-9]\d{3}\s?\d{4}\s?\d{4}`), stripSpace: true},
	{label: models.IDTypeAadhaar, re: regexp.MustCompile(`[2-9]\d{11}`), stripSpace: true},
	// PAN: 5 letters, 4 digits, 1 letter
	{label: models.IDTypePAN, re: regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`), uppercase: true},
}

// dobPattern pairs a date regexp with the capture group holding the date;
// group 0 means the whole match.
type dobPattern struct {
	re    *regexp.Regexp
	group int
}

var dobPatterns = []dobPattern{
	{re: regexp.MustCompile(`(?i)\b(\d{2}[/-]\d{2}[/-]\d{4})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)\b(\d{4}[/-]\d{2}[/-]\d{2})\b`), group: 1},
	{re: regexp.MustCompile(`(?i)DOB[:\s]*(\d{2}[/-]\d{2}[/-]\d{4})`), group: 1},
	{re: regexp.MustCompile(`(?i)Birth[:\s]*(\d{2}[/-]\d{2}[/-]\d{4})`), group: 1},
}

var spaceRe = regexp.MustCompile(`\s`)

// Keyword sets for the line-oriented extractors. "naam" covers Hindi
// transliterations on Aadhaar cards.
var (
	nameKeywords    = []string{"name", "naam"}
	addressKeywords = []string{"address", "addr", "pincode", "pin"}
)
