package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/i18n"
	"github.com/spigell/internship-finder/internal/matching"
	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/profile"
	"github.com/spigell/internship-finder/internal/render"
	"github.com/spigell/internship-finder/internal/wizard"
)

const (
	PromptReportByOrganization = "Report by organizations"
	PromptResultsToFile        = "Dump recommendations to file"
	PromptAppendToExcludeFile  = "Append all recommendations to exclude file"
	PromptBack                 = "back"

	checked   = "[x] "
	unchecked = "[ ] "
)

var errExit = errors.New("exit requested")

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Answer a few questions interactively and browse recommendations",
	Run: func(cmd *cobra.Command, _ []string) {
		runWizard(cmd)
	},
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

type wizardSession struct {
	out      io.Writer
	logger   *zap.Logger
	config   *Config
	tr       *i18n.Translator
	renderer *render.Renderer
	wizard   *wizard.Wizard
}

func runWizard(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := setup()
	tr := newTranslator(config)

	renderer, err := render.New(render.FormatText, tr)
	if err != nil {
		logger.Fatal("preparing output", zap.Error(err))
	}

	service, err := newService(config, logger)
	if err != nil {
		logger.Fatal("preparing recommendations", zap.Error(err))
	}

	w := wizard.New(service, wizard.Delays{
		Submit:  config.Delay.Submit,
		Refresh: config.Delay.Refresh,
	}, logger)

	s := &wizardSession{
		out:      cmd.OutOrStdout(),
		logger:   logger,
		config:   config,
		tr:       tr,
		renderer: renderer,
		wizard:   w,
	}

	logger.Info("starting the wizard", zap.String("session_id", w.Session()))

	for {
		var err error
		switch w.Screen() {
		case wizard.Landing:
			err = s.landing()
		case wizard.Profile:
			err = s.questionnaire(ctx)
		case wizard.Recommendations:
			err = s.recommendations(ctx)
		}

		if err != nil {
			if errors.Is(err, errExit) || errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				logger.Info("exiting", zap.String("reason", "quit requested"))
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func (s *wizardSession) landing() error {
	fmt.Fprintf(s.out, "\n%s\n%s\n\n%s\n\n", s.tr.T("landing.title"), s.tr.T("landing.subtitle"), s.tr.T("landing.description"))

	action, err := s.choose(s.tr.T("landing.tagline"), []string{s.tr.T("landing.cta"), s.tr.T("common.quit")})
	if err != nil {
		return err
	}
	if action == s.tr.T("common.quit") {
		return errExit
	}
	return s.wizard.Start()
}

func (s *wizardSession) questionnaire(ctx context.Context) error {
	fmt.Fprintf(s.out, "\n%s\n%s\n", s.tr.T("profile.title"), s.tr.T("profile.subtitle"))

	if p, ok := s.wizard.Profile(); ok {
		fmt.Fprintf(s.out, "%s: %s / %s / %s / %s\n", s.tr.T("recommendations.back"), p.Education,
			strings.Join(p.Skills, ", "), strings.Join(p.Interests, ", "), p.Location)
	}

	education, err := s.choose(s.tr.T("profile.education.placeholder"), append(append([]string(nil), profile.EducationOptions...), PromptBack))
	if err != nil {
		return err
	}
	if education == PromptBack {
		return s.wizard.Back()
	}

	skills, err := s.toggle(s.tr.T("profile.skills.placeholder"), profile.SkillOptions)
	if err != nil {
		return err
	}

	interests, err := s.toggle(s.tr.T("profile.interests.placeholder"), profile.InterestOptions)
	if err != nil {
		return err
	}

	location, err := s.choose(s.tr.T("profile.location.placeholder"), profile.LocationOptions)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, s.tr.T("common.loading"))

	p := profile.New(education, skills, interests, location)
	err = s.wizard.Submit(ctx, p)
	switch {
	case errors.Is(err, wizard.ErrIncompleteProfile):
		missing := strings.Join(profile.Missing(p), ", ")
		fmt.Fprintln(s.out, s.tr.Format("profile.incomplete", map[string]string{"missing": missing}))
	case err != nil:
		s.logger.Error("getting recommendations", zap.Error(err))
		fmt.Fprintln(s.out, s.tr.T("common.error"))
	}
	return nil
}

func (s *wizardSession) recommendations(ctx context.Context) error {
	p, _ := s.wizard.Profile()
	results := s.wizard.Results()

	fmt.Fprintln(s.out)
	if err := s.renderer.Results(s.out, p, results); err != nil {
		return err
	}

	refresh := s.tr.T("recommendations.refresh")
	back := s.tr.T("recommendations.back")
	quit := s.tr.T("common.quit")

	items := []string{back, quit}
	if len(results) > 0 {
		items = []string{refresh, back, PromptReportByOrganization, PromptResultsToFile}
		if strings.TrimSpace(s.config.ExcludeFile) != "" {
			items = append(items, PromptAppendToExcludeFile)
		}
		items = append(items, quit)
	}

	action, err := s.choose(s.tr.T("recommendations.title"), items)
	if err != nil {
		return err
	}

	switch action {
	case refresh:
		fmt.Fprintln(s.out, s.tr.T("common.loading"))
		if err := s.wizard.Refresh(ctx); err != nil {
			s.logger.Error("refreshing recommendations", zap.Error(err))
			fmt.Fprintln(s.out, s.tr.T("common.error"))
			return nil
		}
		fmt.Fprintln(s.out, s.tr.T("recommendations.updated"))
		return nil
	case back:
		return s.wizard.Back()
	case PromptReportByOrganization:
		pretty, _ := json.MarshalIndent(resultsToOpportunities(results).ReportByOrganization(), "", "  ")
		s.logger.Info(string(pretty), zap.Int("recommendations count", len(results)))
		return nil
	case PromptResultsToFile:
		filename, err := resultsToOpportunities(results).DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		s.logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return s.appendToExcludeFile(results)
	case quit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *wizardSession) appendToExcludeFile(results []matching.Result) error {
	excludeFile := s.config.ExcludeFile

	excluded, err := opportunity.GetExcludedFromFile(excludeFile)
	if err != nil {
		return err
	}

	excluded.Append(resultsToOpportunities(results).ToExcluded())

	if err = excluded.ToFile(excludeFile); err != nil {
		return err
	}

	s.logger.Info("appended to exclude file", zap.String("filename", excludeFile))
	return nil
}

func (s *wizardSession) choose(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}

	_, selected, err := prompt.Run()
	return selected, err
}

// toggle lets the user check and uncheck options until Done is selected.
func (s *wizardSession) toggle(label string, options []string) ([]string, error) {
	done := s.tr.T("profile.done")
	var selected profile.Tags

	for {
		items := make([]string, 0, len(options)+1)
		items = append(items, done)
		for _, option := range options {
			mark := unchecked
			if selected.Has(option) {
				mark = checked
			}
			items = append(items, mark+option)
		}

		prompt := promptui.Select{
			Label: label,
			Items: items,
			Size:  10,
		}

		idx, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			return selected, nil
		}
		selected = selected.Toggle(options[idx-1])
	}
}

func resultsToOpportunities(results []matching.Result) *opportunity.Opportunities {
	items := make([]*opportunity.Opportunity, 0, len(results))
	for _, r := range results {
		items = append(items, r.Opportunity)
	}
	return opportunity.New(items...)
}
