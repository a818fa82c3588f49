// Package sanitize cleans free text coming from admin forms and the sheet.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict       = bluemonday.StrictPolicy()
	percentOctet = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// maxPasses bounds how many layers of entity encoding are peeled off.
const maxPasses = 5

// Text strips markup, drops invalid UTF-8 and percent-encoded octets, and
// collapses all whitespace (line breaks and tabs included) to single spaces.
// Entity-encoded markup is decoded and stripped as well, so the result never
// carries a tag.
func Text(s string) string {
	if s == "" {
		return ""
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	s = stripMarkup(s)
	s = percentOctet.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup sanitizes and unescapes until the text stops changing.
func stripMarkup(s string) string {
	for i := 0; i < maxPasses; i++ {
		next := html.UnescapeString(strict.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}
