package richtext

import "strings"

// SanitizeHref rewrites link destinations that do not carry an HTTP scheme.
// Anything not starting with "http://" or "https://" gets "https://"
// prepended exactly once; destinations that already carry either prefix are
// returned unchanged. Applied on every path that admits a link into the
// content, so stored destinations are always navigable.
func SanitizeHref(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return "https://" + href
}
