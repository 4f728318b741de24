package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/cli/config"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/model"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/domain/types"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/repository/memory"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/usecase"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/safe"
)

func cmdExport() *cli.Command {
	var year string
	var simulation bool
	var format string
	var output string
	var datasetCfg config.Dataset

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "year",
			Usage:       "Assessment year to export (defaults to the baseline year)",
			Sources:     cli.EnvVars("MATURITY_EXPLORER_EXPORT_YEAR"),
			Destination: &year,
		},
		&cli.BoolFlag{
			Name:        "simulation",
			Usage:       "Apply the improvement simulation before exporting",
			Destination: &simulation,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Export format (json or csv)",
			Value:       "json",
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when empty)",
			Destination: &output,
		},
	}
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export assessment payloads for a single year",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			dataset, err := datasetCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset")
			}

			state := model.NewViewState(dataset.Baseline())
			if year != "" {
				y := types.Year(year)
				if err := y.Validate(); err != nil {
					return goerr.Wrap(err, "invalid year flag")
				}
				if !dataset.HasYear(y) {
					return goerr.Wrap(model.ErrInvalidSelection, "year not in dataset", goerr.V(model.YearKey, year))
				}
				state.SelectedYear = y
			}
			state.SimulationEnabled = simulation

			exportFormat := usecase.ExportFormat(format)
			if err := exportFormat.Validate(); err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
				}
				defer safe.Close(ctx, f)
				w = f
			}

			repo := memory.New()
			defer safe.Close(ctx, repo)

			return usecase.New(repo, dataset).Dashboard.Export(ctx, state, exportFormat, w)
		},
	}
}
