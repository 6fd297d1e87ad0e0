package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/opportunity"
	"github.com/spigell/internship-finder/internal/render"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the opportunities recommendations are drawn from",
	Run: func(cmd *cobra.Command, _ []string) {
		runCatalog(cmd)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringP("output", "o", render.FormatText, "output format: text or json")
	catalogCmd.Flags().Bool("all", false, "do not apply organization and exclude file filters")
	catalogCmd.Flags().Int("id", 0, "show a single opportunity by its id")
}

func runCatalog(cmd *cobra.Command) {
	logger, config := setup()

	renderer, err := render.New(flagString(cmd, "output"), newTranslator(config))
	if err != nil {
		logger.Fatal("preparing output", zap.Error(err))
	}

	service, err := newService(config, logger)
	if err != nil {
		logger.Fatal("preparing catalog", zap.Error(err))
	}

	catalog := service.Catalog()
	if all, _ := cmd.Flags().GetBool("all"); !all {
		catalog, err = service.Candidates(context.Background())
		if err != nil {
			logger.Fatal("filtering catalog", zap.Error(err))
		}
	}

	if id, _ := cmd.Flags().GetInt("id"); id != 0 {
		catalog, err = catalogEntry(catalog, id)
		if err != nil {
			logger.Fatal("looking up opportunity", zap.Error(err))
		}
	}

	for _, status := range service.Filters() {
		logger.Debug("filter",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.Any("details", status.Details),
		)
	}

	if err := renderer.Catalog(cmd.OutOrStdout(), catalog); err != nil {
		logger.Fatal("rendering catalog", zap.Error(err))
	}
}

// catalogEntry narrows the catalog down to the opportunity with the given id.
func catalogEntry(catalog *opportunity.Opportunities, id int) (*opportunity.Opportunities, error) {
	item := catalog.FindByID(id)
	if item == nil {
		return nil, fmt.Errorf("opportunity %d is not in the catalog", id)
	}
	return opportunity.New(item), nil
}
