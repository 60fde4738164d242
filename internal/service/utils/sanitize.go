package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user supplied text. The API stores and
// serves plain text only; whatever HTML a client smuggles in is removed before
// it ever reaches storage.
func SanitizeText(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
