package expiration

import (
	"regexp"
	"strings"
	"unicode"
)

// datePattern admits a 1-2 digit month and a 2-4 digit year. It is
// anchored so leading or trailing garbage fails the whole match
// instead of being trimmed away. A 3-digit year is accepted on
// purpose: it is a 4-digit year still being typed, and the year
// validator decides what to do with it.
var datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{2,4})$`)

// Parse normalizes raw input and splits it into month and year tokens.
// Hyphen separators are read as slashes and all whitespace is ignored,
// so " 12 - 2030 " parses the same as "12/2030". ok is false when the
// normalized input does not conform to the grammar.
func Parse(raw string) (monthToken, yearToken string, ok bool) {
	normalized := strings.ReplaceAll(raw, "-", "/")
	normalized = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, normalized)

	m := datePattern.FindStringSubmatch(normalized)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
