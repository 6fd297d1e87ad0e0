package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/internship-finder/internal/profile"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  location  ", Value: "  Delhi  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "location" || fields[0].String != "Delhi" {
		t.Fatalf("unexpected location field: %+v", fields[0])
	}

	empty := StringFields()
	if len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	enriched := WithFields(logger, zap.String("foo", "bar"))
	enriched.Info("test log")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx["foo"] != "bar" {
		t.Fatalf("expected field to be bar, got %q", ctx["foo"])
	}

	enriched = WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	// Ensure logging with the fallback logger does not panic.
	enriched.Info("another log")
}

func TestProfileFields(t *testing.T) {
	fields := ProfileFields(profile.New("Graduate", []string{"Writing"}, nil, ""))
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != FieldEducation || fields[0].String != "Graduate" {
		t.Fatalf("unexpected education field: %+v", fields[0])
	}

	if fields[1].Key != FieldSkills {
		t.Fatalf("unexpected skills field: %+v", fields[1])
	}

	if empty := ProfileFields(profile.Profile{}); len(empty) != 0 {
		t.Fatalf("expected empty fields, got %d", len(empty))
	}
}

func TestWithProfileFields(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	enriched := WithProfileFields(zap.New(core), profile.New("Diploma", nil, []string{"Media"}, "Pune"))
	enriched.Info("test log")

	ctx := observed.All()[0].ContextMap()
	if ctx[FieldEducation] != "Diploma" {
		t.Fatalf("expected education field to be Diploma, got %q", ctx[FieldEducation])
	}

	if ctx[FieldLocation] != "Pune" {
		t.Fatalf("expected location field to be Pune, got %q", ctx[FieldLocation])
	}

	interests, ok := ctx[FieldInterests].([]any)
	if !ok || len(interests) != 1 || interests[0] != "Media" {
		t.Fatalf("unexpected interests field: %#v", ctx[FieldInterests])
	}
}
