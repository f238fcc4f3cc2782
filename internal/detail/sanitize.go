package detail

import (
	"regexp"
)

// Sanitizer rewrites raw tournament HTML into an embeddable fragment.
// It strips script blocks and inline event handlers, neutralizes links back
// to the source origin, and removes new-tab targets. Rules apply in that
// order; stripping scripts first keeps handler and href rewrites from
// touching script bodies.
type Sanitizer struct {
	scriptRe       *regexp.Regexp
	handlerRe      *regexp.Regexp
	hrefDoubleRe   *regexp.Regexp
	hrefSingleRe   *regexp.Regexp
	targetDoubleRe *regexp.Regexp
	targetSingleRe *regexp.Regexp
}

// NewSanitizer builds a sanitizer that neutralizes links to the given
// origin, e.g. "https://fivb.12ndr.at".
func NewSanitizer(origin string) *Sanitizer {
	quoted := regexp.QuoteMeta(origin)

	return &Sanitizer{
		scriptRe:       regexp.MustCompile(`(?is)<script.*?</script>`),
		handlerRe:      regexp.MustCompile(`(?i)\s(on\w+)=("[^"]*"|'[^']*')`),
		hrefDoubleRe:   regexp.MustCompile(`(?i)href="` + quoted + `[^"]*"`),
		hrefSingleRe:   regexp.MustCompile(`(?i)href='` + quoted + `[^']*'`),
		targetDoubleRe: regexp.MustCompile(`(?i)target="_blank"`),
		targetSingleRe: regexp.MustCompile(`(?i)target='_blank'`),
	}
}

// Sanitize returns the cleaned HTML fragment.
func (s *Sanitizer) Sanitize(html string) string {
	html = s.scriptRe.ReplaceAllString(html, "")
	html = s.handlerRe.ReplaceAllString(html, "")
	html = s.hrefDoubleRe.ReplaceAllString(html, `href="#"`)
	html = s.hrefSingleRe.ReplaceAllString(html, `href='#'`)
	html = s.targetDoubleRe.ReplaceAllString(html, "")
	html = s.targetSingleRe.ReplaceAllString(html, "")
	return html
}
