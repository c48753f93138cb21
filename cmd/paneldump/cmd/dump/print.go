package dump

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/woook/paneldump/pkg/dedupe"
	"github.com/woook/paneldump/pkg/panels"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
)

// printSummary shows what the dump run did, on stderr so the output
// file path can still be piped.
func printSummary(final panels.Panels, report *dedupe.Report, output string) {
	fmt.Fprintln(os.Stderr)
	_, _ = successColor.Fprintf(os.Stderr, "✓ Wrote %d panels to %s\n", len(final), output)
	_, _ = labelColor.Fprintf(os.Stderr, "  genes: ")
	fmt.Fprintf(os.Stderr, "%d\n", final.GeneCount())
	_, _ = labelColor.Fprintf(os.Stderr, "  regions: ")
	fmt.Fprintf(os.Stderr, "%d\n", final.RegionCount())

	if report.Groups() > 0 {
		_, _ = labelColor.Fprintf(os.Stderr, "  duplicate groups: ")
		fmt.Fprintf(os.Stderr, "%d (%d merged)\n", report.Groups(), report.Collapsed())
	}
	if report.SkippedEntries > 0 {
		_, _ = warningColor.Fprintf(os.Stderr, "⚠ %d entries had no identity key and were left as-is\n", report.SkippedEntries)
	}

	for _, outcome := range report.Unreconciled() {
		detail := "identical copies"
		if len(outcome.DifferingFields) > 0 {
			detail = "differs in " + strings.Join(outcome.DifferingFields, ", ")
		}
		_, _ = warningColor.Fprintf(os.Stderr, "⚠ %s %q on panel %q kept %d variants (%s)\n",
			outcome.Entity, outcome.Key, outcome.Panel, outcome.Count, detail)
	}
}
