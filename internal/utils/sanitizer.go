package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer cleans user-supplied post bodies before they are stored.
//
// It uses bluemonday's user-generated-content policy: formatting tags,
// links and images survive; scripts, iframes, styles and on* event
// attributes are removed. Links get rel="nofollow noreferrer" and
// fully-qualified links open in a new tab. Safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer constructs an [HTMLSanitizer].
func NewHTMLSanitizer() *HTMLSanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &HTMLSanitizer{policy: p}
}

// Sanitize returns the safe form of raw with surrounding whitespace trimmed.
func (s *HTMLSanitizer) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
