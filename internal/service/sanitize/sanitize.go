package sanitize

import (
	"html"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is counted in runes of the unescaped text.
const MaxNameLength = 12

// Name trims and truncates a player-supplied display name and escapes
// markup-significant characters so it can be echoed verbatim into a page.
//
// Input is unescaped first, which makes Name idempotent:
// Name(Name(s)) == Name(s).
func Name(s string) string {
	s = strings.TrimSpace(html.UnescapeString(s))
	if utf8.RuneCountInString(s) > MaxNameLength {
		s = strings.TrimSpace(string([]rune(s)[:MaxNameLength]))
	}
	return html.EscapeString(s)
}
