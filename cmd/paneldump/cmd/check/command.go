// Package check implements the check command: load an existing dump
// file and report the duplicate entries it still contains, without
// rewriting anything.
package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/woook/paneldump"
	"github.com/woook/paneldump/pkg/dedupe"
	"github.com/woook/paneldump/pkg/save"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// AppContext defines the interface the check command needs from the app.
type AppContext interface {
	Dumper() (*paneldump.Dumper, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the check command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report duplicate entries in an existing dump file",
		Long: `Check reads a panel dump written by the dump command and reports the
duplicate gene and region entries it still contains. The file is not
modified; the command exits non-zero when unresolvable duplicates
remain.`,
		Example: `  paneldump check panels.json
  paneldump check panels.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0])
		},
	}
}

func run(cmd *cobra.Command, app AppContext, path string) error {
	ps, err := save.Load(path)
	if err != nil {
		return err
	}

	dumper, err := app.Dumper()
	if err != nil {
		return err
	}

	_, report, err := dumper.Reconcile(cmd.Context(), ps)
	if err != nil {
		return err
	}

	printReport(report, path)

	if unreconciled := report.Unreconciled(); len(unreconciled) > 0 {
		return fmt.Errorf("%d duplicate groups in %s need manual review", len(unreconciled), path)
	}
	return nil
}

func printReport(report *dedupe.Report, path string) {
	_, _ = infoColor.Fprintf(os.Stderr, "Checked %d panels in %s\n", report.Panels, path)

	if report.Groups() == 0 {
		_, _ = successColor.Fprintln(os.Stderr, "✓ No duplicate entries found")
		return
	}

	if merged := report.Collapsed(); merged > 0 {
		_, _ = warningColor.Fprintf(os.Stderr, "⚠ %d duplicate groups would be merged by a fresh dump\n", merged)
	}
	for _, outcome := range report.Unreconciled() {
		detail := "identical copies"
		if len(outcome.DifferingFields) > 0 {
			detail = "differs in " + strings.Join(outcome.DifferingFields, ", ")
		}
		_, _ = warningColor.Fprintf(os.Stderr, "⚠ %s %q on panel %q: %d variants (%s)\n",
			outcome.Entity, outcome.Key, outcome.Panel, outcome.Count, detail)
	}
}
