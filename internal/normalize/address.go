package normalize

import "strings"

// stopTokens mark the start of unit/apartment qualifiers. When one appears,
// the address is cut before it.
var stopTokens = map[string]bool{
	"apt":       true,
	"unit":      true,
	"suite":     true,
	"building":  true,
	"floor":     true,
	"room":      true,
	"apartment": true,
	"apt.":      true,
}

// TrimAddress reduces an address to its street portion. The text before the
// first comma is kept (whitespace-trimmed); if that text still contains a
// unit qualifier, tokens are accumulated from the start until a stop token
// is hit.
//
// The scan starts at token 0 without skipping the street number, so a street
// number token that equals a stop word truncates the address to empty. That
// is the observed behavior and is deliberately kept.
//
// TrimAddress is idempotent and a blank address stays blank.
func TrimAddress(raw string) string {
	s := raw
	if i := strings.Index(s, ","); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if !containsStopToken(s) {
		return s
	}

	var b strings.Builder
	for _, tok := range strings.Fields(s) {
		if stopTokens[strings.ToLower(tok)] {
			break
		}
		b.WriteString(tok)
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

// containsStopToken reports whether any stop token occurs as a substring of
// the lower-cased text. Substring containment intentionally over-triggers
// ("Unity St" contains "unit"): the token scan below only truncates on an
// exact token match, so false positives leave the address intact.
func containsStopToken(s string) bool {
	lower := strings.ToLower(s)
	for tok := range stopTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
