package matching

import (
	"strings"

	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
)

const (
	governmentInterest = "government"
	ministryMarker     = "Ministry"
)

// Rule is a single predicate over a profile and an opportunity.
type Rule func(p profile.Profile, o *opportunity.Opportunity) bool

// LocationRule is a hard exclusion: with a concrete preference only that
// location and Remote/Online placements pass. Locations compare exactly.
func LocationRule(p profile.Profile, o *opportunity.Opportunity) bool {
	if !p.HasConcreteLocation() {
		return true
	}

	preferred := strings.TrimSpace(p.Location)
	location := strings.TrimSpace(o.Location)
	return location == preferred || location == profile.RemoteOnline
}

// SkillRule relates profile skills to the required skills of the opportunity.
func SkillRule(p profile.Profile, o *opportunity.Opportunity) bool {
	return AnyRelated(p.Skills, o.RequiredSkills)
}

// InterestRule relates profile interests to the opportunity sector, falling back
// to GovernmentMinistryRule for each interest.
func InterestRule(p profile.Profile, o *opportunity.Opportunity) bool {
	for _, interest := range p.Interests {
		if ContainsEitherWay(interest, o.Sector) || GovernmentMinistryRule(interest, o.Organization) {
			return true
		}
	}
	return false
}

// GovernmentMinistryRule treats ministries as government placements even when
// their sector says otherwise (e.g. "Ministry of Education" in sector
// "Education"). The interest compares case-insensitively; the organization
// must contain "Ministry" with that exact casing.
func GovernmentMinistryRule(interest, organization string) bool {
	return strings.EqualFold(strings.TrimSpace(interest), governmentInterest) &&
		strings.Contains(organization, ministryMarker)
}

// Relevant combines the rules: location AND (skill OR interest).
func Relevant(p profile.Profile, o *opportunity.Opportunity) bool {
	if o == nil || !LocationRule(p, o) {
		return false
	}
	return SkillRule(p, o) || InterestRule(p, o)
}
