package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/logger"
	"github.com/spigell/internship-finder/internal/profile"
	"github.com/spigell/internship-finder/internal/render"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print recommendations for a profile given by flags",
	Example: `  internship-finder recommend --education Graduate --skill Writing --skill Research \
    --interest Government --location Delhi`,
	Run: func(cmd *cobra.Command, _ []string) {
		runRecommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().String("education", "", "education level, e.g. Graduate")
	recommendCmd.Flags().StringArray("skill", nil, "a skill; repeat the flag for more")
	recommendCmd.Flags().StringArray("interest", nil, "an interest; repeat the flag for more")
	recommendCmd.Flags().String("location", profile.AnyLocation, "preferred location, Remote/Online or Any Location")
	recommendCmd.Flags().StringP("output", "o", render.FormatText, "output format: text or json")
	recommendCmd.Flags().Int("limit", 0, "maximum number of recommendations")

	viper.BindPFlag("limit", recommendCmd.Flags().Lookup("limit"))
}

func runRecommend(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := setup()
	tr := newTranslator(config)

	renderer, err := render.New(flagString(cmd, "output"), tr)
	if err != nil {
		logger.Fatal("preparing output", zap.Error(err))
	}

	p := profileFromFlags(cmd)
	if missing := profile.Missing(p); len(missing) > 0 {
		logger.Warn("profile is incomplete, recommendations may be empty", zap.Strings("missing", missing))
	}

	service, err := newService(config, logger)
	if err != nil {
		logger.Fatal("preparing recommendations", zap.Error(err))
	}

	results, err := service.Recommend(ctx, p)
	if err != nil {
		logger.Error("getting recommendations", zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), tr.T("common.error"))
		results = nil
	}

	if err := renderer.Results(cmd.OutOrStdout(), p, results); err != nil {
		logger.Fatal("rendering recommendations", zap.Error(err))
	}
}

func profileFromFlags(cmd *cobra.Command) profile.Profile {
	skills, _ := cmd.Flags().GetStringArray("skill")
	interests, _ := cmd.Flags().GetStringArray("interest")

	return profile.New(
		flagString(cmd, "education"),
		skills,
		interests,
		flagString(cmd, "location"),
	)
}

func flagString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

// setup builds the logger and reads the config. Failures are fatal.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		File:  viper.GetString("log-file"),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}

	l.Debug("starting the internship-finder",
		zap.String("version", version),
		zap.Any("config", config),
	)

	return l, config
}
