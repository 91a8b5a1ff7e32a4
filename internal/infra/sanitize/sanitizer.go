// Package sanitize cleans user-supplied free text.
package sanitize

import (
	"html"
	"strings"

	"bikeshare/internal/domain/service"

	"github.com/microcosm-cc/bluemonday"
)

type strictSanitizer struct {
	policy *bluemonday.Policy
}

// NewStrictSanitizer returns a sanitizer that removes every HTML element and keeps the text content.
func NewStrictSanitizer() service.TextSanitizer {
	return &strictSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips markup and surrounding whitespace. Entities escaped by the policy are decoded
// again so the stored text reads the way the user typed it.
func (s *strictSanitizer) Sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
