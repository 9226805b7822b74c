package usecase

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

const maxSanitizePasses = 8

// plainText strips markup from user input and trims it. Entities are
// unescaped so "Art & Design" round-trips unchanged, and the strip runs again
// until nothing changes so encoded markup cannot come back as live tags.
func plainText(s string) string {
	cur := s
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(textPolicy.Sanitize(cur))
		if next == cur {
			return strings.TrimSpace(next)
		}
		cur = next
	}
	// No fixed point: keep the escaped form.
	return strings.TrimSpace(textPolicy.Sanitize(cur))
}
