package extract

import (
	"net/url"
	"regexp"
	"strings"
)

// hrefRegex matches href attributes with an absolute http or https URL.
// The value is captured up to the closing quote with no further validation:
// duplicates are retained and order of first appearance is preserved by
// FindAllStringSubmatch.
var hrefRegex = regexp.MustCompile(`href="(https?://[^"]+)"`)

// Links returns all href link values found in text, in order of first
// appearance, duplicates retained.
func Links(text string) []string {
	matches := hrefRegex.FindAllStringSubmatch(text, -1)

	links := make([]string, 0, len(matches))
	for _, m := range matches {
		links = append(links, m[1])
	}
	return links
}

// Username derives the account name from a profile URL.
// For https://www.instagram.com/alice/ it returns "alice".
// Returns an empty string when the URL is unparseable or has no
// usable path segment.
func Username(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}

	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			return segment
		}
	}
	return ""
}
