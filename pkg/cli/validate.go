package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/cli/config"
)

var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// colorGap colors a protection gap value by severity.
func colorGap(gap int) string {
	val := fmt.Sprintf("%d", gap)
	switch {
	case gap >= 3:
		return colorRed.Sprint(val)
	case gap == 2:
		return colorYellow.Sprint(val)
	default:
		return colorGreen.Sprint(val)
	}
}

func cmdValidate() *cli.Command {
	var datasetCfg config.Dataset

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a dataset file and print an assessment summary",
		Flags:   datasetCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			dataset, err := datasetCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "dataset validation failed")
			}

			w := os.Stdout
			_, _ = colorBold.Fprintln(w, "Dataset OK")
			_, _ = fmt.Fprintf(w, "  years:      %d (baseline %s)\n", len(dataset.Years()), dataset.Baseline())
			_, _ = fmt.Fprintf(w, "  categories: %d\n\n", len(dataset.Categories()))

			for _, year := range dataset.Years() {
				_, _ = colorBold.Fprintf(w, "%s\n", year.Label)
				for _, rec := range dataset.Records(year.ID) {
					name := string(rec.Category)
					if profile, ok := dataset.Profile(rec.Category); ok {
						name = profile.Name
					}
					_, _ = fmt.Fprintf(w, "  %-24s threat=%d best=%d gap=%s\n",
						name, rec.ThreatLevel, rec.BestProtection(), colorGap(rec.Gap()))
				}
				_, _ = fmt.Fprintln(w)
			}

			return nil
		},
	}
}
