package matching

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
)

// DefaultLimit caps the number of results.
const DefaultLimit = 5

// Result is an opportunity selected for a profile together with the reason shown to the candidate.
type Result struct {
	Opportunity *opportunity.Opportunity `json:"opportunity"`
	Reason      string                   `json:"reason"`
}

type Matcher struct {
	limit  int
	logger *zap.Logger
}

// NewMatcher creates a matcher. Non-positive limits fall back to DefaultLimit.
func NewMatcher(limit int, logger *zap.Logger) *Matcher {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Matcher{
		limit:  limit,
		logger: logger,
	}
}

func (m *Matcher) Limit() int {
	return m.limit
}

// Match returns at most DefaultLimit relevant opportunities, highest stipend first.
func Match(p profile.Profile, catalog []*opportunity.Opportunity) []Result {
	return NewMatcher(DefaultLimit, nil).Match(p, catalog)
}

// Match never fails: empty input or no relevant entries yield an empty slice.
func (m *Matcher) Match(p profile.Profile, catalog []*opportunity.Opportunity) []Result {
	p = p.Normalize()

	relevant := make([]*opportunity.Opportunity, 0, len(catalog))
	for _, item := range catalog {
		if !Relevant(p, item) {
			continue
		}
		relevant = append(relevant, item)
	}

	slices.SortStableFunc(relevant, func(a, b *opportunity.Opportunity) int {
		return cmp.Compare(b.Stipend, a.Stipend)
	})

	if len(relevant) > m.limit {
		relevant = relevant[:m.limit]
	}

	results := make([]Result, 0, len(relevant))
	for _, item := range relevant {
		results = append(results, Result{
			Opportunity: item,
			Reason:      m.reason(p, item),
		})
	}

	m.logger.Debug("matched opportunities",
		zap.Int("catalog", len(catalog)),
		zap.Int("results", len(results)),
		zap.Ints("ids", resultIDs(results)),
	)

	return results
}

func (m *Matcher) reason(p profile.Profile, o *opportunity.Opportunity) string {
	text, err := renderReason(fmt.Sprintf("reason-%d", o.ID), o.ReasonTemplate, p)
	if err == nil {
		return text
	}

	m.logger.Warn("falling back to default reason",
		zap.Int("opportunity_id", o.ID),
		zap.Error(err),
	)

	text, err = renderReason("reason-default", opportunity.DefaultReasonTemplate, p)
	if err != nil {
		// the default template only reads profile fields
		return ""
	}
	return text
}

func renderReason(name, body string, p profile.Profile) (string, error) {
	tmpl, err := opportunity.ParseReason(name, body)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("execute reason template %q: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func resultIDs(results []Result) []int {
	ids := make([]int, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.Opportunity.ID)
	}
	return ids
}
