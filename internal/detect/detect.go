package detect

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/CuriousSingularity/ig-tools/internal/extract"
	"github.com/CuriousSingularity/ig-tools/internal/model"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultDomainPrefix restricts results to Instagram profile links.
const DefaultDomainPrefix = "https://www.instagram.com/"

// diffContextLines is the number of unchanged context lines around each
// diff hunk. Matches the unified-diff convention of three lines.
const diffContextLines = 3

// Detector compares a followers export against a followings export and
// reports the links present only on the followers side.
type Detector struct {
	// domainPrefix filters extracted links; only links containing this
	// substring are reported.
	domainPrefix string

	// logger is used for debug output of intermediate pipeline stages.
	logger *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithDomainPrefix overrides the domain substring used to filter links.
func WithDomainPrefix(prefix string) Option {
	return func(d *Detector) {
		if prefix != "" {
			d.domainPrefix = prefix
		}
	}
}

// WithLogger sets a custom logger for the detector.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		d.logger = logger
	}
}

// New creates a Detector with the default Instagram domain filter.
func New(opts ...Option) *Detector {
	d := &Detector{
		domainPrefix: DefaultDomainPrefix,
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = slog.Default()
	}

	return d
}

// NonFollowers returns the links that appear in the diff of followings
// against followers but are absent from the followings text.
//
// The diff treats followings as the "from" side and followers as the "to"
// side, so lines unique to the followers export show up as additions. Links
// are extracted from the complete diff text; ordering follows the diff and
// duplicates are retained. Identical inputs produce an empty diff and
// therefore an empty result.
func (d *Detector) NonFollowers(followers, followings string) ([]string, error) {
	diff := difflib.UnifiedDiff{
		A:       difflib.SplitLines(followings),
		B:       difflib.SplitLines(followers),
		Context: diffContextLines,
	}

	diffText, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return nil, fmt.Errorf("failed to compute diff: %w", err)
	}

	extracted := extract.Links(diffText)
	baseline := model.NewLinkSet(extract.Links(followings)...)

	d.logger.Debug("diff computed",
		"diff_bytes", len(diffText),
		"extracted_links", len(extracted),
		"baseline_links", baseline.Len(),
	)

	links := make([]string, 0, len(extracted))
	for _, link := range extracted {
		if !strings.Contains(link, d.domainPrefix) {
			continue
		}
		if baseline.Contains(link) {
			continue
		}
		links = append(links, link)
	}
	return links, nil
}

// Detect runs the full comparison over two loaded documents and builds
// a report with usernames resolved from the profile links.
func (d *Detector) Detect(followers, followings *model.Document) (*model.DetectReport, error) {
	links, err := d.NonFollowers(followers.Content, followings.Content)
	if err != nil {
		return nil, err
	}

	report := model.NewDetectReport(followers.Path, followings.Path)
	for _, link := range links {
		report.Profiles = append(report.Profiles, model.Profile{
			URL:      link,
			Username: extract.Username(link),
		})
	}

	d.logger.Debug("detection complete", "non_followers", report.Count())

	return report, nil
}
