package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/logger"
	"github.com/spigell/internship-finder/internal/matching"
	"github.com/spigell/internship-finder/internal/profile"
	"github.com/spigell/internship-finder/internal/utils"
)

// Screen is a wizard state.
type Screen int

const (
	Landing Screen = iota
	Profile
	Recommendations
)

func (s Screen) String() string {
	switch s {
	case Landing:
		return "landing"
	case Profile:
		return "profile"
	case Recommendations:
		return "recommendations"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const (
	DefaultSubmitDelay  = 2 * time.Second
	DefaultRefreshDelay = 1500 * time.Millisecond
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrIncompleteProfile = errors.New("profile is incomplete")
)

// Recommender fetches recommendations for a profile.
type Recommender interface {
	Recommend(ctx context.Context, p profile.Profile) ([]matching.Result, error)
}

type Delays struct {
	Submit  time.Duration
	Refresh time.Duration
}

// Wizard walks a candidate from the landing screen through the questionnaire to
// the results. It is meant to be driven from a single goroutine.
type Wizard struct {
	recommender Recommender
	delays      Delays
	logger      *zap.Logger
	session     string

	screen  Screen
	profile *profile.Profile
	results []matching.Result
	loading bool
}

// New creates a wizard on the landing screen. Negative delays are treated as zero.
func New(recommender Recommender, delays Delays, log *zap.Logger) *Wizard {
	session := uuid.NewString()
	return &Wizard{
		recommender: recommender,
		delays: Delays{
			Submit:  max(delays.Submit, 0),
			Refresh: max(delays.Refresh, 0),
		},
		logger:  logger.WithFields(log, zap.String(logger.FieldSession, session)),
		session: session,
		screen:  Landing,
	}
}

func (w *Wizard) Session() string { return w.session }

func (w *Wizard) Screen() Screen { return w.screen }

func (w *Wizard) Loading() bool { return w.loading }

// Profile returns the submitted profile, if any.
func (w *Wizard) Profile() (profile.Profile, bool) {
	if w.profile == nil {
		return profile.Profile{}, false
	}
	return *w.profile, true
}

// Results returns the latest recommendations.
func (w *Wizard) Results() []matching.Result {
	return append([]matching.Result(nil), w.results...)
}

// Start moves from the landing screen to the questionnaire.
func (w *Wizard) Start() error {
	if err := w.expect("start", Landing); err != nil {
		return err
	}
	w.moveTo(Profile)
	return nil
}

// Back returns to the previous screen. Leaving the questionnaire clears the
// profile and results; leaving the results keeps them.
func (w *Wizard) Back() error {
	switch w.screen {
	case Profile:
		w.profile = nil
		w.results = nil
		w.moveTo(Landing)
		return nil
	case Recommendations:
		w.moveTo(Profile)
		return nil
	default:
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, w.screen)
	}
}

// Submit records the profile, waits the submit delay and fetches recommendations.
// On failure the wizard stays on the questionnaire.
func (w *Wizard) Submit(ctx context.Context, p profile.Profile) error {
	if err := w.expect("submit", Profile); err != nil {
		return err
	}

	p = p.Normalize()
	if missing := profile.Missing(p); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteProfile, strings.Join(missing, ", "))
	}

	w.profile = &p
	if err := w.fetch(ctx, w.delays.Submit); err != nil {
		return err
	}

	w.moveTo(Recommendations)
	return nil
}

// Refresh re-fetches recommendations for the stored profile. Without a profile it does nothing.
func (w *Wizard) Refresh(ctx context.Context) error {
	if err := w.expect("refresh", Recommendations); err != nil {
		return err
	}
	if w.profile == nil {
		return nil
	}
	return w.fetch(ctx, w.delays.Refresh)
}

func (w *Wizard) fetch(ctx context.Context, delay time.Duration) error {
	w.loading = true
	defer func() { w.loading = false }()

	if err := utils.WaitFor(ctx, delay); err != nil {
		return err
	}

	results, err := w.recommender.Recommend(ctx, *w.profile)
	if err != nil {
		w.logger.Warn("failed to fetch recommendations", zap.Error(err))
		return fmt.Errorf("fetching recommendations: %w", err)
	}

	w.results = results
	w.logger.Info("recommendations updated", zap.Int("count", len(results)))
	return nil
}

func (w *Wizard) expect(op string, screen Screen) error {
	if w.screen != screen {
		return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, op, w.screen)
	}
	return nil
}

func (w *Wizard) moveTo(screen Screen) {
	w.logger.Debug("screen changed",
		zap.Stringer("from", w.screen),
		zap.Stringer("to", screen),
	)
	w.screen = screen
}
