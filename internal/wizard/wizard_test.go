package wizard

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/internship-finder/internal/matching"
	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
)

type stubRecommender struct {
	calls   int
	last    profile.Profile
	err     error
	results []matching.Result
	sawLoad bool
	wizard  *Wizard
}

func (s *stubRecommender) Recommend(_ context.Context, p profile.Profile) ([]matching.Result, error) {
	s.calls++
	s.last = p
	if s.wizard != nil && s.wizard.Loading() {
		s.sawLoad = true
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func completeProfile() profile.Profile {
	return profile.New("Graduate", []string{"Writing"}, []string{"Education"}, "Delhi")
}

func newTestWizard(stub *stubRecommender) *Wizard {
	w := New(stub, Delays{}, zap.NewNop())
	stub.wizard = w
	return w
}

func TestHappyPath(t *testing.T) {
	stub := &stubRecommender{results: []matching.Result{{Opportunity: &opportunity.Opportunity{ID: 105}, Reason: "r"}}}
	w := newTestWizard(stub)

	if w.Screen() != Landing {
		t.Fatalf("expected landing, got %s", w.Screen())
	}
	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := w.Submit(context.Background(), completeProfile()); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if w.Screen() != Recommendations {
		t.Fatalf("expected recommendations, got %s", w.Screen())
	}
	if len(w.Results()) != 1 || w.Results()[0].Opportunity.ID != 105 {
		t.Fatalf("unexpected results: %+v", w.Results())
	}
	if !stub.sawLoad {
		t.Fatalf("expected loading flag during fetch")
	}
	if w.Loading() {
		t.Fatalf("expected loading flag to be reset")
	}

	if err := w.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if stub.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", stub.calls)
	}

	if err := w.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if w.Screen() != Profile {
		t.Fatalf("expected profile, got %s", w.Screen())
	}
	if _, ok := w.Profile(); !ok {
		t.Fatalf("expected profile to be kept when going back from results")
	}

	if err := w.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if w.Screen() != Landing {
		t.Fatalf("expected landing, got %s", w.Screen())
	}
	if _, ok := w.Profile(); ok {
		t.Fatalf("expected profile to be cleared on landing")
	}
	if len(w.Results()) != 0 {
		t.Fatalf("expected results to be cleared on landing")
	}
}

func TestInvalidTransitions(t *testing.T) {
	w := newTestWizard(&stubRecommender{})

	if err := w.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for back on landing, got %v", err)
	}
	if err := w.Submit(context.Background(), completeProfile()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for submit on landing, got %v", err)
	}
	if err := w.Refresh(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for refresh on landing, got %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := w.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected invalid transition for second start, got %v", err)
	}
}

func TestSubmitRejectsIncompleteProfile(t *testing.T) {
	stub := &stubRecommender{}
	w := newTestWizard(stub)
	_ = w.Start()

	err := w.Submit(context.Background(), profile.New("Graduate", []string{"Writing"}, nil, ""))
	if !errors.Is(err, ErrIncompleteProfile) {
		t.Fatalf("expected incomplete profile error, got %v", err)
	}
	if err.Error() != "profile is incomplete: missing interests, location" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
	if stub.calls != 0 {
		t.Fatalf("did not expect a fetch")
	}
	if w.Screen() != Profile {
		t.Fatalf("expected to stay on profile, got %s", w.Screen())
	}
}

func TestSubmitFailureStaysOnProfile(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	fetchErr := errors.New("catalog unavailable")
	stub := &stubRecommender{err: fetchErr}
	w := New(stub, Delays{}, zap.New(core))
	_ = w.Start()

	err := w.Submit(context.Background(), completeProfile())
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	if w.Screen() != Profile {
		t.Fatalf("expected to stay on profile, got %s", w.Screen())
	}

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	if entries[0].ContextMap()["session_id"] != w.Session() {
		t.Fatalf("expected session id on log entry: %v", entries[0].ContextMap())
	}
}

func TestSubmitHonoursCancellation(t *testing.T) {
	stub := &stubRecommender{}
	w := New(stub, Delays{Submit: DefaultSubmitDelay}, zap.NewNop())
	_ = w.Start()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.Submit(ctx, completeProfile()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("did not expect a fetch after cancellation")
	}
}

func TestSubmitNormalizesProfile(t *testing.T) {
	stub := &stubRecommender{}
	w := newTestWizard(stub)
	_ = w.Start()

	p := profile.Profile{
		Education: " Graduate ",
		Skills:    profile.Tags{"Writing", "Writing", " "},
		Interests: profile.Tags{"Media"},
		Location:  " Delhi ",
	}
	if err := w.Submit(context.Background(), p); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if stub.last.Location != "Delhi" || len(stub.last.Skills) != 1 {
		t.Fatalf("expected normalized profile, got %+v", stub.last)
	}
}

func TestScreenString(t *testing.T) {
	if Recommendations.String() != "recommendations" {
		t.Fatalf("unexpected name: %s", Recommendations)
	}
	if Screen(9).String() != "screen(9)" {
		t.Fatalf("unexpected name: %s", Screen(9))
	}
}
