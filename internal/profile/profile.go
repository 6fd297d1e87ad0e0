package profile

import (
	"strings"
)

const (
	// AnyLocation means the candidate has no location preference.
	AnyLocation = "Any Location"
	// RemoteOnline is both a location preference and an opportunity location.
	RemoteOnline = "Remote/Online"
)

// Tags is an ordered set of free-text labels. Order of first appearance is kept.
type Tags []string

// NewTags trims the given labels and drops blanks and exact duplicates.
func NewTags(labels ...string) Tags {
	tags := make(Tags, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		tags = append(tags, label)
	}
	return tags
}

func (t Tags) Len() int {
	return len(t)
}

func (t Tags) Has(label string) bool {
	for _, tag := range t {
		if tag == label {
			return true
		}
	}
	return false
}

// Toggle returns a copy with label removed if present, appended otherwise.
func (t Tags) Toggle(label string) Tags {
	label = strings.TrimSpace(label)
	if label == "" {
		return t
	}

	next := make(Tags, 0, len(t)+1)
	removed := false
	for _, tag := range t {
		if tag == label {
			removed = true
			continue
		}
		next = append(next, tag)
	}
	if !removed {
		next = append(next, label)
	}
	return next
}

// Profile holds the questionnaire answers used as matching criteria.
type Profile struct {
	Education string `json:"education" mapstructure:"education"`
	Skills    Tags   `json:"skills" mapstructure:"skills"`
	Interests Tags   `json:"interests" mapstructure:"interests"`
	Location  string `json:"location" mapstructure:"location"`
}

// New builds a normalized profile.
func New(education string, skills, interests []string, location string) Profile {
	return Profile{
		Education: strings.TrimSpace(education),
		Skills:    NewTags(skills...),
		Interests: NewTags(interests...),
		Location:  strings.TrimSpace(location),
	}
}

// Normalize returns a copy with trimmed fields and deduplicated tags.
func (p Profile) Normalize() Profile {
	return New(p.Education, p.Skills, p.Interests, p.Location)
}

// IsComplete reports whether every questionnaire section has an answer.
func (p Profile) IsComplete() bool {
	return len(Missing(p)) == 0
}

// Missing lists the questionnaire sections left unanswered.
func Missing(p Profile) []string {
	var missing []string
	if strings.TrimSpace(p.Education) == "" {
		missing = append(missing, "education")
	}
	if len(NewTags(p.Skills...)) == 0 {
		missing = append(missing, "skills")
	}
	if len(NewTags(p.Interests...)) == 0 {
		missing = append(missing, "interests")
	}
	if strings.TrimSpace(p.Location) == "" {
		missing = append(missing, "location")
	}
	return missing
}

// HasConcreteLocation reports whether the preference names a specific place.
func (p Profile) HasConcreteLocation() bool {
	return IsConcreteLocation(p.Location)
}

// IsConcreteLocation is false for blanks and for the AnyLocation and RemoteOnline sentinels.
func IsConcreteLocation(location string) bool {
	location = strings.TrimSpace(location)
	return location != "" && location != AnyLocation && location != RemoteOnline
}
