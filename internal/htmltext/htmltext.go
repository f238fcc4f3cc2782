// Package htmltext normalizes text pulled out of upstream HTML.
//
// The upstream federation site serves entity-encoded, whitespace-heavy markup.
// Decode resolves the fixed entity set the site actually emits and collapses
// whitespace; StripTags additionally removes tag markup. Both are single-pass
// and never fail: whatever they cannot recognize passes through untouched.
package htmltext

import (
	"regexp"
	"strings"
)

var entities = map[string]string{
	"&nbsp;": " ",
	"&amp;":  "&",
	"&quot;": `"`,
	"&#039;": "'",
	"&lt;":   "<",
	"&gt;":   ">",
}

var (
	entityRe = regexp.MustCompile(`&(amp|quot|#039|lt|gt|nbsp);`)
	spaceRe  = regexp.MustCompile(`\s+`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// Decode replaces the fixed entity set with literal characters, collapses
// whitespace runs to a single space, and trims the result.
func Decode(text string) string {
	decoded := entityRe.ReplaceAllStringFunc(text, func(entity string) string {
		if literal, ok := entities[entity]; ok {
			return literal
		}
		return entity
	})

	// Literal non-breaking spaces are not covered by \s in Go regexp.
	decoded = strings.ReplaceAll(decoded, "\u00a0", " ")

	return strings.TrimSpace(spaceRe.ReplaceAllString(decoded, " "))
}

// StripTags removes anything that looks like a tag, replacing it with a
// space so adjacent cell contents do not run together, then decodes.
func StripTags(text string) string {
	return Decode(tagRe.ReplaceAllString(text, " "))
}
