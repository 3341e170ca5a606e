package normalize

import "strings"

// supportedLocales are the recognized language codes, matched in order as
// inclusion substrings against the lower-cased raw value. The first match
// wins; order therefore matters.
var supportedLocales = []string{"en", "es", "fr", "de", "it"}

// DefaultLocale is used when the raw value is blank or matches nothing.
const DefaultLocale = "en"

// NormalizeLocale canonicalizes a raw locale string to one of the supported
// language codes. "en-US", "EN", and "english" all normalize to "en";
// anything unrecognized falls back to DefaultLocale.
func NormalizeLocale(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return DefaultLocale
	}
	for _, code := range supportedLocales {
		if strings.Contains(s, code) {
			return code
		}
	}
	return DefaultLocale
}
