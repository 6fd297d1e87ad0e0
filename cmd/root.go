package cmd

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/filtering"
	"github.com/spigell/internship-finder/internal/i18n"
	"github.com/spigell/internship-finder/internal/matching"
	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/recommend"
	"github.com/spigell/internship-finder/internal/wizard"
)

const (
	app       = "internship-finder"
	envPrefix = "INTERNSHIP_FINDER"
)

type Config struct {
	CatalogFile string       `mapstructure:"catalog-file"`
	ExcludeFile string       `mapstructure:"exclude-file"`
	Language    string       `mapstructure:"language"`
	Limit       int          `mapstructure:"limit"`
	Delay       *DelayConfig `mapstructure:"delay"`
	Exclude     *struct {
		Organizations []string `mapstructure:"organizations"`
	} `mapstructure:"exclude"`
}

type DelayConfig struct {
	Submit  time.Duration `mapstructure:"submit"`
	Refresh time.Duration `mapstructure:"refresh"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "internship-finder recommends internships that fit your education, skills, interests and location",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is internship-finder.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringP("language", "l", "", "interface language as a BCP 47 tag, e.g. en or hi-IN")
	rootCmd.PersistentFlags().String("catalog-file", "", "catalog file with opportunities. Default is the built-in catalog.")
	rootCmd.PersistentFlags().StringP("exclude-file", "e", "", "special file with opportunities to exclude. Default is unset.")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))
	viper.BindPFlag("catalog-file", rootCmd.PersistentFlags().Lookup("catalog-file"))
	viper.BindPFlag("exclude-file", rootCmd.PersistentFlags().Lookup("exclude-file"))

	viper.SetDefault("language", "en")
	viper.SetDefault("limit", matching.DefaultLimit)
	viper.SetDefault("delay.submit", wizard.DefaultSubmitDelay)
	viper.SetDefault("delay.refresh", wizard.DefaultRefreshDelay)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
	}

	// The config file is optional unless given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	if config.Delay == nil {
		config.Delay = &DelayConfig{}
	}

	return config, nil
}

func (c *Config) excludedOrganizations() []string {
	if c.Exclude == nil {
		return nil
	}
	return c.Exclude.Organizations
}

func newTranslator(config *Config) *i18n.Translator {
	return i18n.New(config.Language)
}

// newService wires the catalog, the filter pipeline and the matcher.
func newService(config *Config, logger *zap.Logger) (*recommend.Service, error) {
	catalog := opportunity.Seed()
	if path := strings.TrimSpace(config.CatalogFile); path != "" {
		loaded, err := opportunity.Load(path)
		if err != nil {
			return nil, err
		}
		catalog = loaded
		logger.Info("using catalog file", zap.String("path", path), zap.Int("count", catalog.Len()))
	}

	return recommend.New(recommend.Options{
		Catalog: catalog,
		Filters: filtering.Default(),
		Config: &filtering.Config{
			Organizations: config.excludedOrganizations(),
			ExcludeFile:   config.ExcludeFile,
		},
		Limit:  config.Limit,
		Logger: logger,
	}), nil
}
