package filtering

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/opportunity"
)

type organizationsFilter struct {
	disabled      bool
	reason        string
	organizations []string
}

// NewOrganizations creates a filter that removes opportunities by organizations configured in the config.
func NewOrganizations() Filter {
	return &organizationsFilter{}
}

func (f *organizationsFilter) Name() string { return "organizations" }

func (f *organizationsFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *organizationsFilter) IsEnabled() bool { return !f.disabled }

func (f *organizationsFilter) Validate(cfg *Config) error {
	f.organizations = nil
	if cfg == nil {
		return nil
	}
	for _, org := range cfg.Organizations {
		if org = strings.TrimSpace(org); org != "" {
			f.organizations = append(f.organizations, org)
		}
	}
	return nil
}

func (f *organizationsFilter) Apply(_ context.Context, deps Deps, o *opportunity.Opportunities) (*opportunity.Opportunities, Step, error) {
	initial := o.Len()
	if len(f.organizations) == 0 {
		return o, Step{Initial: initial, Dropped: 0, Left: o.Len()}, nil
	}

	excluded := o.Exclude(opportunity.OrganizationField, f.organizations)
	if len(excluded) > 0 {
		deps.Logger.Info("excluding opportunities by organizations",
			zap.Strings("excluded_organizations", f.organizations),
			zap.Ints("excluded_opportunities", excluded),
			zap.Int("opportunities_left", o.Len()),
		)
	}

	return o, Step{Initial: initial, Dropped: len(excluded), Left: o.Len()}, nil
}

func (f *organizationsFilter) Status() Status {
	details := map[string]string{}
	if len(f.organizations) > 0 {
		details["organizations"] = strings.Join(f.organizations, ",")
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
