// Package dump implements the dump command: fetch the signed-off
// panels, reconcile duplicated entries, and write the dump file.
package dump

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/woook/paneldump"
	"github.com/woook/paneldump/internal/genepanels"
	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/save"
)

// AppContext defines the interface the dump command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	DumperWithOptions(opts ...paneldump.Option) (*paneldump.Dumper, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the dump command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		output         string
		genepanelsPath string
		extraPanels    string
		format         string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Download signed-off panels and write a reconciled dump",
		Long: `Dump downloads every signed-off panel from PanelApp, keeps the green
(confidence level 3) genes and regions, reconciles duplicated entries
within each panel, and writes the result to a single dump file.

A genepanels TSV restricts the dump to the panels a laboratory actually
tests for; --extra-panels adds panel IDs on top of that list.`,
		Example: `  paneldump dump -o panels.json
  paneldump dump -o panels.json --genepanels genepanels.tsv
  paneldump dump -o panels.yaml --format yaml --genepanels genepanels.tsv --extra-panels 398,700`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), app, output, genepanelsPath, extraPanels, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "path of the dump file to write (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().StringVar(&genepanelsPath, "genepanels", "", "genepanels TSV restricting which panels are dumped")
	cmd.Flags().StringVar(&extraPanels, "extra-panels", "", "comma-separated panel IDs kept in addition to the genepanels file")
	cmd.Flags().StringVar(&format, "format", "json", "dump format: json or yaml")

	return cmd
}

func run(ctx context.Context, app AppContext, output, genepanelsPath, extraPanels, format string) error {
	outputFormat, ok := save.ParseFormat(format)
	if !ok {
		return &errors.ValidationError{
			Field:   "format",
			Value:   format,
			Message: "must be json or yaml",
		}
	}

	keep, err := keepIDs(genepanelsPath, extraPanels)
	if err != nil {
		return err
	}

	dumper, err := app.DumperWithOptions(paneldump.WithKeepPanels(keep...))
	if err != nil {
		return err
	}

	final, report, err := dumper.Dump(ctx)
	if err != nil {
		return err
	}

	if err := save.Panels(final, save.WithPath(output), save.WithFormat(outputFormat)); err != nil {
		return err
	}

	printSummary(final, report, output)
	return nil
}

// keepIDs resolves the panel IDs to retain from the genepanels file and
// the --extra-panels list. Extra IDs on their own make no sense: without
// a genepanels file the dump already keeps every panel.
func keepIDs(genepanelsPath, extraPanels string) ([]int, error) {
	if extraPanels != "" && genepanelsPath == "" {
		return nil, &errors.ValidationError{
			Field:   "extra-panels",
			Message: "--extra-panels requires --genepanels",
		}
	}

	if genepanelsPath == "" {
		return nil, nil
	}

	ids, err := genepanels.PanelIDs(genepanelsPath)
	if err != nil {
		return nil, err
	}

	extra, err := genepanels.ParseExtraIDs(extraPanels)
	if err != nil {
		return nil, err
	}

	return append(ids, extra...), nil
}
