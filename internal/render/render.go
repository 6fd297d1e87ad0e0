package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/spigell/internship-finder/internal/i18n"
	"github.com/spigell/internship-finder/internal/matching"
	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	// visibleSkills is how many required skills a card lists before "+N more".
	visibleSkills = 3
)

// Renderer writes match results and catalogs in one output format.
type Renderer struct {
	format string
	tr     *i18n.Translator
}

func New(format string, tr *i18n.Translator) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	if tr == nil {
		tr = i18n.New()
	}
	return &Renderer{format: format, tr: tr}, nil
}

type resultsPayload struct {
	Profile profile.Profile `json:"profile"`
	Count   int             `json:"count"`
	Results []resultPayload `json:"results"`
}

type resultPayload struct {
	*opportunity.Opportunity
	Reason string `json:"reason"`
}

// Results renders the recommendations for a profile.
func (r *Renderer) Results(w io.Writer, p profile.Profile, results []matching.Result) error {
	if r.format == FormatJSON {
		payload := resultsPayload{Profile: p, Count: len(results), Results: make([]resultPayload, 0, len(results))}
		for _, res := range results {
			payload.Results = append(payload.Results, resultPayload{Opportunity: res.Opportunity, Reason: res.Reason})
		}
		return writeJSON(w, payload)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.tr.T("recommendations.title"))
	fmt.Fprintf(&b, "%s\n\n", r.tr.Format("recommendations.subtitle", map[string]string{"count": strconv.Itoa(len(results))}))
	fmt.Fprintf(&b, "Education: %s | Location: %s | Skills: %d selected | Interests: %d selected\n",
		p.Education, p.Location, p.Skills.Len(), p.Interests.Len())

	if len(results) == 0 {
		fmt.Fprintf(&b, "\n%s\n%s\n", r.tr.T("recommendations.empty"), r.tr.T("recommendations.empty.hint"))
		_, err := io.WriteString(w, b.String())
		return err
	}

	for idx, res := range results {
		b.WriteString("\n")
		r.card(&b, idx+1, res.Opportunity)
		fmt.Fprintf(&b, "   %s\n", r.tr.Format("recommendations.reason", map[string]string{"reason": res.Reason}))
		fmt.Fprintf(&b, "   %s: %s\n", r.tr.T("recommendations.apply"), res.Opportunity.ApplyURL)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Catalog renders every opportunity of a catalog, as a table in text format.
func (r *Renderer) Catalog(w io.Writer, catalog *opportunity.Opportunities) error {
	if r.format == FormatJSON {
		return writeJSON(w, catalog.Items)
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Organization", "Location", "Stipend", "Duration")

	for _, item := range catalog.Items {
		location := item.Location
		if item.Flexible {
			location += " *"
		}

		row := []string{
			strconv.Itoa(item.ID),
			item.Title,
			item.Organization,
			location,
			r.tr.Stipend(item.Stipend),
			item.Duration,
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("append catalog row %d: %w", item.ID, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render catalog: %w", err)
	}
	return nil
}

func (r *Renderer) card(b *strings.Builder, position int, o *opportunity.Opportunity) {
	fmt.Fprintf(b, "%d. %s [#%d]\n", position, o.Title, o.ID)
	fmt.Fprintf(b, "   %s / %s\n", o.Organization, o.Sector)
	fmt.Fprintf(b, "   %s | %s | %s\n", o.Location, o.Duration, r.tr.Stipend(o.Stipend))
	if skills := r.skills(o.RequiredSkills); skills != "" {
		fmt.Fprintf(b, "   %s: %s\n", r.tr.T("profile.skills"), skills)
	}
}

func (r *Renderer) skills(required []string) string {
	if len(required) <= visibleSkills {
		return strings.Join(required, ", ")
	}
	more := r.tr.Format("recommendations.more", map[string]string{"count": strconv.Itoa(len(required) - visibleSkills)})
	return strings.Join(required[:visibleSkills], ", ") + " " + more
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
