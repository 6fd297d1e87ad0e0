package opportunity

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spigell/internship-finder/internal/profile"
)

const (
	IDField           = "ID"
	OrganizationField = "Organization"
)

type Opportunities struct {
	Items []*Opportunity
}

// Opportunity is a single listed internship. Catalog entries are reference data
// and must not be mutated; use Clone or Localize to derive new collections.
type Opportunity struct {
	ID             int      `json:"id" mapstructure:"id"`
	Title          string   `json:"title" mapstructure:"title"`
	Organization   string   `json:"organization" mapstructure:"organization"`
	Sector         string   `json:"sector" mapstructure:"sector"`
	Location       string   `json:"location" mapstructure:"location"`
	Flexible       bool     `json:"flexible,omitempty" mapstructure:"flexible"`
	Stipend        int      `json:"stipend" mapstructure:"stipend"`
	Duration       string   `json:"duration" mapstructure:"duration"`
	Description    string   `json:"description,omitempty" mapstructure:"description"`
	RequiredSkills []string `json:"required_skills" mapstructure:"required-skills"`
	ApplyURL       string   `json:"apply_url" mapstructure:"apply-url"`
	ReasonTemplate string   `json:"-" mapstructure:"reason"`
}

func New(items ...*Opportunity) *Opportunities {
	return &Opportunities{Items: items}
}

func (o *Opportunities) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Items)
}

func (o *Opportunities) FindByID(id int) *Opportunity {
	for _, item := range o.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (o *Opportunities) IDs() []int {
	ids := make([]int, 0, o.Len())
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// Clone copies the collection and every entry so callers can modify the result freely.
func (o *Opportunities) Clone() *Opportunities {
	cloned := &Opportunities{Items: make([]*Opportunity, 0, o.Len())}
	for _, item := range o.Items {
		c := *item
		c.RequiredSkills = append([]string(nil), item.RequiredSkills...)
		cloned.Items = append(cloned.Items, &c)
	}
	return cloned
}

// Localize returns a copy in which flexible placements take the candidate's
// preferred location. Any Location and blank preferences keep the catalog default.
func (o *Opportunities) Localize(preferred string) *Opportunities {
	localized := o.Clone()
	preferred = strings.TrimSpace(preferred)
	if preferred == "" || preferred == profile.AnyLocation {
		return localized
	}

	for _, item := range localized.Items {
		if item.Flexible {
			item.Location = preferred
		}
	}
	return localized
}

func (op *Opportunity) GetStringField(name string) string {
	switch name {
	case IDField:
		return strconv.Itoa(op.ID)
	case OrganizationField:
		return op.Organization
	default:
		return ""
	}
}

// Exclude drops entries whose field matches any target (case-insensitive) and
// returns the IDs of the dropped entries. Remaining order is preserved.
func (o *Opportunities) Exclude(name string, targets []string) []int {
	if len(targets) == 0 {
		return nil
	}

	var excluded []int
	kept := make([]*Opportunity, 0, len(o.Items))
	for _, item := range o.Items {
		if matchesAny(item.GetStringField(name), targets) {
			excluded = append(excluded, item.ID)
			continue
		}
		kept = append(kept, item)
	}
	o.Items = kept
	return excluded
}

func matchesAny(value string, targets []string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, target := range targets {
		if strings.EqualFold(value, strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}

// Report by organization.
func (o *Opportunities) ReportByOrganization() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range o.Items {
		key := fmt.Sprintf("%s (%s)", item.Organization, item.Sector)
		report[key] = append(report[key], map[string]string{
			"id":       strconv.Itoa(item.ID),
			"title":    item.Title,
			"url":      item.ApplyURL,
			"location": item.Location,
			"stipend":  strconv.Itoa(item.Stipend),
			"duration": item.Duration,
			"skills":   strings.Join(item.RequiredSkills, ", "),
		})
	}
	return report
}

func (o *Opportunities) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "opportunities_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(o); err != nil {
		return "", err
	}
	return file.Name(), nil
}
