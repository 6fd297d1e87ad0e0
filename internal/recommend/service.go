package recommend

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/filtering"
	"github.com/spigell/internship-finder/internal/logger"
	"github.com/spigell/internship-finder/internal/matching"
	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
)

// Service produces recommendations for a profile from a fixed catalog.
type Service struct {
	catalog *opportunity.Opportunities
	filters []filtering.Filter
	config  *filtering.Config
	matcher *matching.Matcher
	logger  *zap.Logger
}

type Options struct {
	Catalog *opportunity.Opportunities
	Filters []filtering.Filter
	Config  *filtering.Config
	Limit   int
	Logger  *zap.Logger
}

// New builds a service. A nil catalog falls back to the built-in seed.
func New(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = opportunity.Seed()
	}

	return &Service{
		catalog: catalog,
		filters: opts.Filters,
		config:  opts.Config,
		matcher: matching.NewMatcher(opts.Limit, log.Named("matcher")),
		logger:  log,
	}
}

// Recommend filters a copy of the catalog, localizes flexible placements to the
// profile location and matches. Errors only come from filter steps or ctx.
func (s *Service) Recommend(ctx context.Context, p profile.Profile) ([]matching.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p = p.Normalize()
	log := logger.WithProfileFields(s.logger, p)

	candidates, err := s.candidates(ctx, log)
	if err != nil {
		return nil, err
	}

	localized := candidates.Localize(p.Location)
	results := s.matcher.Match(p, localized.Items)

	for idx, r := range results {
		log.Debug("recommendation",
			zap.Int("position", idx+1),
			zap.Int("opportunity_id", r.Opportunity.ID),
			zap.Int("stipend", r.Opportunity.Stipend),
			zap.String("reason_preview", reasonPreview(r.Reason, reasonPreviewLength)),
		)
	}

	log.Info("recommendations ready",
		zap.Int("catalog", s.catalog.Len()),
		zap.Int("candidates", localized.Len()),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// Candidates returns a copy of the catalog with the filter steps applied.
func (s *Service) Candidates(ctx context.Context) (*opportunity.Opportunities, error) {
	return s.candidates(ctx, s.logger)
}

func (s *Service) candidates(ctx context.Context, log *zap.Logger) (*opportunity.Opportunities, error) {
	candidates, err := filtering.Run(ctx, s.config, filtering.Deps{Logger: log}, s.filters, s.catalog.Clone())
	if err != nil {
		return nil, fmt.Errorf("filtering catalog: %w", err)
	}
	return candidates, nil
}

// Catalog returns a copy of the configured catalog.
func (s *Service) Catalog() *opportunity.Opportunities {
	return s.catalog.Clone()
}

// Filters describes the configured filter steps.
func (s *Service) Filters() []filtering.Status {
	return filtering.Describe(s.filters)
}
