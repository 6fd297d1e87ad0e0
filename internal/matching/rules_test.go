package matching

import (
	"testing"

	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
)

func TestLocationRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		preferred string
		location  string
		expect    bool
	}{
		{name: "any location accepts everything", preferred: profile.AnyLocation, location: "Patna", expect: true},
		{name: "remote preference accepts everything", preferred: profile.RemoteOnline, location: "Patna", expect: true},
		{name: "blank preference accepts everything", preferred: "", location: "Patna", expect: true},
		{name: "same city", preferred: "Delhi", location: "Delhi", expect: true},
		{name: "remote placement", preferred: "Delhi", location: profile.RemoteOnline, expect: true},
		{name: "other city", preferred: "Delhi", location: "Mumbai", expect: false},
		{name: "exact comparison", preferred: "Delhi", location: "delhi", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := profile.Profile{Location: tt.preferred}
			o := &opportunity.Opportunity{Location: tt.location}
			if got := LocationRule(p, o); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestSkillRule(t *testing.T) {
	o := &opportunity.Opportunity{RequiredSkills: []string{"Writing", "Communication", "Teaching"}}

	if !SkillRule(profile.New("", []string{"Writing"}, nil, ""), o) {
		t.Fatalf("expected Writing to match")
	}
	if !SkillRule(profile.New("", []string{"Team Communication Skills"}, nil, ""), o) {
		t.Fatalf("expected superstring to match")
	}
	if SkillRule(profile.New("", []string{"Accounting"}, nil, ""), o) {
		t.Fatalf("did not expect Accounting to match")
	}
}

func TestInterestRule(t *testing.T) {
	ministry := &opportunity.Opportunity{Organization: "Ministry of Education", Sector: "Education"}
	bank := &opportunity.Opportunity{Organization: "Reserve Bank of India", Sector: "Finance"}

	if !InterestRule(profile.New("", nil, []string{"Government"}, ""), ministry) {
		t.Fatalf("expected government interest to match a ministry")
	}
	if InterestRule(profile.New("", nil, []string{"Government"}, ""), bank) {
		t.Fatalf("did not expect government interest to match a bank")
	}
	if !InterestRule(profile.New("", nil, []string{"fin"}, ""), bank) {
		t.Fatalf("expected substring of sector to match")
	}
	if !InterestRule(profile.New("", nil, []string{"Healthcare and Finance"}, ""), bank) {
		t.Fatalf("expected superstring of sector to match")
	}
}

func TestGovernmentMinistryRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		interest     string
		organization string
		expect       bool
	}{
		{name: "exact", interest: "Government", organization: "Ministry of Rural Development", expect: true},
		{name: "interest case folded", interest: "GOVERNMENT", organization: "Ministry of Health", expect: true},
		{name: "ministry casing is strict", interest: "Government", organization: "ministry of health", expect: false},
		{name: "other interest", interest: "Education", organization: "Ministry of Education", expect: false},
		{name: "no ministry", interest: "Government", organization: "Reserve Bank of India", expect: false},
		{name: "partial interest is not enough", interest: "Govern", organization: "Ministry of Health", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GovernmentMinistryRule(tt.interest, tt.organization); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestRelevantIsLocationAndSkillOrInterest(t *testing.T) {
	o := &opportunity.Opportunity{
		Location:       "Mumbai",
		Sector:         "Finance",
		Organization:   "Reserve Bank of India",
		RequiredSkills: []string{"Accounting"},
	}

	skillOnly := profile.New("Graduate", []string{"Accounting"}, []string{"Agriculture"}, "Mumbai")
	if !Relevant(skillOnly, o) {
		t.Fatalf("skill match alone should be enough")
	}

	interestOnly := profile.New("Graduate", []string{"Teaching"}, []string{"Finance"}, "Mumbai")
	if !Relevant(interestOnly, o) {
		t.Fatalf("interest match alone should be enough")
	}

	wrongCity := profile.New("Graduate", []string{"Accounting"}, []string{"Finance"}, "Delhi")
	if Relevant(wrongCity, o) {
		t.Fatalf("location rule must exclude regardless of relevance")
	}

	if Relevant(skillOnly, nil) {
		t.Fatalf("nil opportunity is never relevant")
	}
}
