package model

// LinkSet is an unordered collection of links used for membership testing.
// Uniqueness is determined by exact string equality; no URL normalization
// is performed.
type LinkSet map[string]struct{}

// NewLinkSet builds a LinkSet from the given links.
// Duplicates collapse silently.
func NewLinkSet(links ...string) LinkSet {
	set := make(LinkSet, len(links))
	for _, link := range links {
		set[link] = struct{}{}
	}
	return set
}

// Contains reports whether the exact link string is in the set.
func (s LinkSet) Contains(link string) bool {
	_, ok := s[link]
	return ok
}

// Len returns the number of distinct links in the set.
func (s LinkSet) Len() int {
	return len(s)
}
