package model

import "time"

// Profile is one detected account that does not follow back.
type Profile struct {
	// URL is the full profile link as it appeared in the export.
	URL string `json:"url"`

	// Username is the account name derived from the URL path.
	// Empty when the URL has no usable path segment.
	Username string `json:"username,omitempty"`
}

// DetectReport is the result of one detection run.
//
// Design decision: We use a single flat struct covering both the inputs and
// the findings so that every report writer (text, JSON, markdown) works from
// the same value without extra lookups.
type DetectReport struct {
	// FollowersPath is the path of the followers export that was compared.
	FollowersPath string `json:"followers_path"`

	// FollowingsPath is the path of the followings export that was compared.
	FollowingsPath string `json:"followings_path"`

	// DetectedAt is the timestamp when the detection was performed.
	DetectedAt time.Time `json:"detected_at"`

	// Profiles lists the non-followers in detection order.
	// Order matches the diff output; duplicates are retained.
	Profiles []Profile `json:"profiles"`
}

// NewDetectReport creates a report for the given input paths with the
// detection timestamp set to now.
func NewDetectReport(followersPath, followingsPath string) *DetectReport {
	return &DetectReport{
		FollowersPath:  followersPath,
		FollowingsPath: followingsPath,
		DetectedAt:     time.Now(),
		Profiles:       make([]Profile, 0),
	}
}

// Count returns the number of detected non-followers.
func (r *DetectReport) Count() int {
	return len(r.Profiles)
}

// IsEmpty reports whether the detection found no non-followers.
func (r *DetectReport) IsEmpty() bool {
	return len(r.Profiles) == 0
}

// Links returns the profile URLs in detection order.
func (r *DetectReport) Links() []string {
	links := make([]string, 0, len(r.Profiles))
	for _, p := range r.Profiles {
		links = append(links, p.URL)
	}
	return links
}
