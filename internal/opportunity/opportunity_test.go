package opportunity

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spigell/internship-finder/internal/profile"
)

func TestSeedIsValid(t *testing.T) {
	seed := Seed()
	if err := seed.Validate(); err != nil {
		t.Fatalf("seed catalog is invalid: %v", err)
	}
	if seed.Len() != 6 {
		t.Fatalf("expected 6 seed opportunities, got %d", seed.Len())
	}
}

func TestLocalize(t *testing.T) {
	seed := Seed()

	tests := []struct {
		name      string
		preferred string
		expect105 string
		expect101 string
	}{
		{name: "any location keeps defaults", preferred: profile.AnyLocation, expect101: "Delhi", expect105: profile.RemoteOnline},
		{name: "blank keeps defaults", preferred: "  ", expect101: "Delhi", expect105: profile.RemoteOnline},
		{name: "concrete city", preferred: "Patna", expect101: "Patna", expect105: profile.RemoteOnline},
		{name: "remote", preferred: profile.RemoteOnline, expect101: profile.RemoteOnline, expect105: profile.RemoteOnline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			localized := seed.Localize(tt.preferred)
			if got := localized.FindByID(101).Location; got != tt.expect101 {
				t.Fatalf("expected 101 at %q, got %q", tt.expect101, got)
			}
			if got := localized.FindByID(105).Location; got != tt.expect105 {
				t.Fatalf("expected 105 at %q, got %q", tt.expect105, got)
			}
		})
	}

	if got := seed.FindByID(101).Location; got != "Delhi" {
		t.Fatalf("localize must not mutate the source catalog, got %q", got)
	}
}

func TestExcludePreservesOrder(t *testing.T) {
	catalog := Seed()

	excluded := catalog.Exclude(OrganizationField, []string{"reserve bank of india", "Ministry of Education"})
	if !reflect.DeepEqual(excluded, []int{102, 105}) {
		t.Fatalf("unexpected excluded ids: %v", excluded)
	}

	if !reflect.DeepEqual(catalog.IDs(), []int{101, 103, 104, 106}) {
		t.Fatalf("unexpected remaining ids: %v", catalog.IDs())
	}

	excluded = catalog.Exclude(IDField, []string{"104", "999"})
	if !reflect.DeepEqual(excluded, []int{104}) {
		t.Fatalf("unexpected excluded ids: %v", excluded)
	}

	if excluded := catalog.Exclude(IDField, nil); excluded != nil {
		t.Fatalf("expected nothing excluded, got %v", excluded)
	}
}

func TestCloneIsDeep(t *testing.T) {
	seed := Seed()
	cloned := seed.Clone()
	cloned.Items[0].RequiredSkills[0] = "changed"
	cloned.Items[0].Title = "changed"

	if seed.Items[0].RequiredSkills[0] == "changed" || seed.Items[0].Title == "changed" {
		t.Fatalf("clone shares state with the source")
	}
}

func TestReportByOrganization(t *testing.T) {
	report := Seed().ReportByOrganization()

	entries, ok := report["Ministry of Education (Education)"]
	if !ok {
		t.Fatalf("expected organization key in report")
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry["stipend"] != "4500" {
		t.Fatalf("unexpected stipend: %q", entry["stipend"])
	}
	if entry["skills"] != "Writing, Communication, Teaching" {
		t.Fatalf("unexpected skills: %q", entry["skills"])
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `opportunities:
  - id: 1
    title: Content Writer
    organization: Ministry of Culture
    sector: Media
    location: Remote/Online
    stipend: "3000"
    duration: 3 months
    required-skills: [Writing]
    apply-url: https://example.com/1
    reason: "Uses your {{join .Skills \", \"}}"
  - id: 2
    title: Field Assistant
    organization: Green Trust
    sector: Environment
    location: Jaipur
    flexible: true
    stipend: 2500
    duration: 2 months
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if catalog.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", catalog.Len())
	}

	first := catalog.FindByID(1)
	if first.Stipend != 3000 {
		t.Fatalf("expected weakly typed stipend 3000, got %d", first.Stipend)
	}
	if !reflect.DeepEqual(first.RequiredSkills, []string{"Writing"}) {
		t.Fatalf("unexpected required skills: %v", first.RequiredSkills)
	}
	if first.ApplyURL != "https://example.com/1" {
		t.Fatalf("unexpected apply url: %q", first.ApplyURL)
	}
	if !catalog.FindByID(2).Flexible {
		t.Fatalf("expected entry 2 to be flexible")
	}
}

func TestDecodeRejectsInvalidCatalog(t *testing.T) {
	raw := []any{
		map[string]any{"id": 1, "title": "A", "stipend": 100},
		map[string]any{"id": 1, "title": "", "stipend": -5, "reason": "{{if}}"},
	}

	_, err := Decode(raw)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	for _, fragment := range []string{"duplicate id 1", "title is required", "stipend must not be negative", "parse reason template"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected error to mention %q, got %v", fragment, err)
		}
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	raw := []any{map[string]any{"id": 1, "title": "A", "salary": 100}}
	if _, err := Decode(raw); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestExcludedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded.json")

	excluded, err := GetExcludedFromFile(path)
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(excluded.Items) != 0 {
		t.Fatalf("expected empty list, got %d", len(excluded.Items))
	}

	catalog := Seed()
	catalog.Items = catalog.Items[:2]
	excluded.Append(catalog.ToExcluded())
	if err := excluded.ToFile(path); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	loaded, err := GetExcludedFromFile(path)
	if err != nil {
		t.Fatalf("reading exclude file: %v", err)
	}
	if !reflect.DeepEqual(loaded.IDs(), []int{101, 102}) {
		t.Fatalf("unexpected ids: %v", loaded.IDs())
	}
	if loaded.Items[0].Organization != "Ministry of Electronics & Information Technology" {
		t.Fatalf("unexpected organization: %q", loaded.Items[0].Organization)
	}
}
