// Package paneldump fetches signed-off gene panels from PanelApp and
// reconciles duplicated panel entries before the dump is written out.
//
// A Dumper ties the pieces together: the PanelApp client fetches and
// filters panels, duplicate detection groups entries that share an
// identity key, and assembly substitutes each group's resolution back
// into its panel. The final panel list is guaranteed to contain the
// same panels as the input.
package paneldump

import (
	"context"
	"fmt"

	"github.com/woook/paneldump/internal/panelapp"
	"github.com/woook/paneldump/pkg/dedupe"
	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// Dumper produces a reconciled panel dump.
type Dumper struct {
	config    *config
	client    *panelapp.Client
	detector  *dedupe.Detector
	assembler *dedupe.Assembler
}

// New creates a Dumper with the given options.
func New(opts ...Option) (*Dumper, error) {
	d := &Dumper{
		config:    defaultConfig(),
		detector:  dedupe.NewDetector(),
		assembler: dedupe.NewAssembler(dedupe.NewResolver()),
	}

	for _, opt := range opts {
		if err := opt(d.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	var clientOpts []panelapp.Option
	if d.config.baseURL != "" {
		clientOpts = append(clientOpts, panelapp.WithBaseURL(d.config.baseURL))
	}
	if d.config.httpClient != nil {
		clientOpts = append(clientOpts, panelapp.WithHTTPClient(d.config.httpClient))
	}
	d.client = panelapp.NewClient(clientOpts...)

	return d, nil
}

// Fetch downloads all signed-off panels, restricted to the configured
// keep set when one was supplied.
func (d *Dumper) Fetch(ctx context.Context) (panels.Panels, error) {
	return d.client.SignedOffPanels(ctx, d.config.keep)
}

// Reconcile detects duplicated entries across the given panels and
// rebuilds each panel with the duplicates resolved. The input is not
// modified.
func (d *Dumper) Reconcile(ctx context.Context, ps panels.Panels) (panels.Panels, *dedupe.Report, error) {
	logging.Ctx(ctx).Debug().Strs("panels", ps.Names()).Msg("Reconciling panels")

	duplicates, skipped := d.detector.Find(ctx, ps)

	final, report, err := d.assembler.Assemble(ctx, ps, duplicates)
	if err != nil {
		return nil, nil, err
	}
	report.SkippedEntries = len(skipped)

	logging.Ctx(ctx).Info().
		Int("panels", report.Panels).
		Int("duplicate_groups", report.Groups()).
		Int("merged", report.Collapsed()).
		Int("unreconciled", len(report.Unreconciled())).
		Int("skipped_entries", report.SkippedEntries).
		Msg("Reconciliation complete")

	return final, report, nil
}

// Dump fetches panels and reconciles them in one step.
func (d *Dumper) Dump(ctx context.Context) (panels.Panels, *dedupe.Report, error) {
	ps, err := d.Fetch(ctx)
	if err != nil {
		return nil, nil, err
	}
	return d.Reconcile(ctx, ps)
}
