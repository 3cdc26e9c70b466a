package detect

import (
	"strings"
	"testing"

	"github.com/CuriousSingularity/ig-tools/internal/model"
)

// page builds a minimal export page with one profile link per line.
func page(links ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>\n")
	for _, link := range links {
		sb.WriteString(`<a href="` + link + `">` + link + "</a>\n")
	}
	sb.WriteString("</body></html>\n")
	return sb.String()
}

// TestDetectorNonFollowers tests the diff-based detection pipeline.
func TestDetectorNonFollowers(t *testing.T) {
	t.Parallel()

	t.Run("identical documents yield empty result", func(t *testing.T) {
		t.Parallel()

		doc := page("https://www.instagram.com/alice/")
		links, err := New().NonFollowers(doc, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("expected empty result, got %v", links)
		}
	})

	t.Run("reports link only on followers side", func(t *testing.T) {
		t.Parallel()

		followings := page("https://www.instagram.com/alice/")
		followers := page(
			"https://www.instagram.com/alice/",
			"https://www.instagram.com/bob/",
		)

		links, err := New().NonFollowers(followers, followings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 1 {
			t.Fatalf("expected 1 link, got %d: %v", len(links), links)
		}
		if links[0] != "https://www.instagram.com/bob/" {
			t.Errorf("expected bob, got %q", links[0])
		}
	})

	t.Run("link in followings never reported", func(t *testing.T) {
		t.Parallel()

		// Alice appears in a changed region of the followers diff but is
		// present in the followings document, so she must be excluded.
		followings := "header one\n" + page("https://www.instagram.com/alice/")
		followers := "header two\n" + page("https://www.instagram.com/alice/")

		links, err := New().NonFollowers(followers, followings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("expected empty result, got %v", links)
		}
	})

	t.Run("empty followings reports all follower links", func(t *testing.T) {
		t.Parallel()

		followers := page("https://www.instagram.com/carol/")
		links, err := New().NonFollowers(followers, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 1 || links[0] != "https://www.instagram.com/carol/" {
			t.Errorf("expected carol, got %v", links)
		}
	})

	t.Run("filters non-instagram links", func(t *testing.T) {
		t.Parallel()

		followers := page(
			"https://twitter.com/carol",
			"https://www.instagram.com/dave/",
		)

		links, err := New().NonFollowers(followers, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 1 || links[0] != "https://www.instagram.com/dave/" {
			t.Errorf("expected only dave, got %v", links)
		}
	})

	t.Run("preserves diff order", func(t *testing.T) {
		t.Parallel()

		followers := page(
			"https://www.instagram.com/zoe/",
			"https://www.instagram.com/adam/",
		)

		links, err := New().NonFollowers(followers, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{
			"https://www.instagram.com/zoe/",
			"https://www.instagram.com/adam/",
		}
		if len(links) != len(want) {
			t.Fatalf("expected %d links, got %v", len(want), links)
		}
		for i := range want {
			if links[i] != want[i] {
				t.Errorf("link %d: expected %q, got %q", i, want[i], links[i])
			}
		}
	})

	t.Run("custom domain prefix", func(t *testing.T) {
		t.Parallel()

		followers := page("https://example.social/erin/")
		d := New(WithDomainPrefix("https://example.social/"))

		links, err := d.NonFollowers(followers, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 1 || links[0] != "https://example.social/erin/" {
			t.Errorf("expected erin, got %v", links)
		}
	})

	t.Run("both documents empty", func(t *testing.T) {
		t.Parallel()

		links, err := New().NonFollowers("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(links) != 0 {
			t.Errorf("expected empty result, got %v", links)
		}
	})
}

// TestDetectorDetect tests report construction from documents.
func TestDetectorDetect(t *testing.T) {
	t.Parallel()

	t.Run("builds report with usernames", func(t *testing.T) {
		t.Parallel()

		followers := &model.Document{
			Path:    "followers.html",
			Content: page("https://www.instagram.com/bob/"),
		}
		followings := &model.Document{
			Path:    "followings.html",
			Content: "",
		}

		report, err := New().Detect(followers, followings)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.FollowersPath != "followers.html" {
			t.Errorf("expected followers path, got %q", report.FollowersPath)
		}
		if report.FollowingsPath != "followings.html" {
			t.Errorf("expected followings path, got %q", report.FollowingsPath)
		}
		if report.Count() != 1 {
			t.Fatalf("expected 1 profile, got %d", report.Count())
		}
		if report.Profiles[0].Username != "bob" {
			t.Errorf("expected username bob, got %q", report.Profiles[0].Username)
		}
	})

	t.Run("identical documents give empty report", func(t *testing.T) {
		t.Parallel()

		doc := &model.Document{Path: "same.html", Content: page("https://www.instagram.com/alice/")}
		report, err := New().Detect(doc, doc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.IsEmpty() {
			t.Errorf("expected empty report, got %d profiles", report.Count())
		}
	})
}
