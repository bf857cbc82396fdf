package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"launchgate/internal/audit"
	"launchgate/internal/ecosystem"
	"launchgate/internal/governor"
	"launchgate/internal/validator"
)

// AuditResult is the JSON shape of the audit and launch commands.
type AuditResult struct {
	Compliant bool        `json:"compliant"`
	Launched  *bool       `json:"launched,omitempty"`
	Entries   []EntryView `json:"entries"`
}

// EntryView is one published audit record with its component name resolved.
type EntryView struct {
	ID        string     `json:"id"`
	EmittedAt time.Time  `json:"emitted_at"`
	Kind      audit.Kind `json:"kind"`
	Line      string     `json:"line"`
	Group     *int       `json:"group,omitempty"`
	Component string     `json:"component,omitempty"`
	Source    string     `json:"source,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

// trailOptions selects which published records are printed.
type trailOptions struct {
	Kind string
	Tail int
}

func addTrailFlags(cmd *cobra.Command, opts *trailOptions) {
	cmd.Flags().StringVar(&opts.Kind, "kind", "", fmt.Sprintf("print only entries of this kind %v", audit.Kinds))
	cmd.Flags().IntVar(&opts.Tail, "tail", 0, "print only the last N entries")
	cmd.MarkFlagsMutuallyExclusive("kind", "tail")
}

// NewAuditCommand creates the audit command.
func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	var trailOpts trailOptions

	cmd := &cobra.Command{
		Use:   "audit <transactions.yaml>",
		Short: "Audit ecosystem transactions against the policy",
		Long: `Validate every transaction of every component and print the audit trail.

Exits 1 when any transaction is non-compliant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGovernor(rootOpts, &trailOpts, cmd, args[0], false)
		},
	}
	addTrailFlags(cmd, &trailOpts)

	return cmd
}

// runGovernor loads the ecosystem and either audits it or attempts a launch.
func runGovernor(opts *RootOptions, trailOpts *trailOptions, cmd *cobra.Command, path string, launch bool) error {
	if trailOpts.Tail < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --tail %d: must not be negative", trailOpts.Tail))
	}
	var kind audit.Kind
	if trailOpts.Kind != "" {
		k, err := audit.ParseKind(trailOpts.Kind)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --kind", err)
		}
		kind = k
	}

	rt, err := opts.runtime(cmd)
	if err != nil {
		return err
	}

	eco, err := ecosystem.LoadTransactions(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load transactions", err)
	}

	store := audit.NewInMemoryStore()
	publisher, err := audit.NewPublisher(store, audit.WithPublisherClock(opts.now))
	if err != nil {
		return WrapExitError(ExitCommandError, "build audit publisher", err)
	}

	gov, err := governor.New(validator.New(rt.policy),
		governor.WithClock(opts.now),
		governor.WithLogger(rt.logger),
		governor.WithMetrics(rt.metrics.Governor),
		governor.WithEmitter(publisher),
		governor.WithTracer(rt.tracing.Tracer(governor.TracerName)),
	)
	if err != nil {
		return WrapExitError(ExitCommandError, "build governor", err)
	}

	ctx := cmd.Context()
	groups := eco.Groups()
	var compliant, launched bool
	if launch {
		launched = gov.LaunchMainnet(ctx, groups)
		compliant = launched
	} else {
		compliant = gov.AuditEcosystemTransactions(ctx, groups)
	}

	records, err := selectRecords(ctx, store, kind, trailOpts.Tail)
	if err != nil {
		return WrapExitError(ExitCommandError, "read audit records", err)
	}
	if err := writeTrail(rt.formatter, eco, records, compliant, launch, launched); err != nil {
		return err
	}
	if err := opts.flush(ctx, rt); err != nil {
		return err
	}

	switch {
	case launch && !launched:
		return NewExitError(ExitFailure, "launch aborted: ecosystem is not compliant")
	case !compliant:
		return NewExitError(ExitFailure, "ecosystem is not compliant")
	}
	return nil
}

func selectRecords(ctx context.Context, store *audit.InMemoryStore, kind audit.Kind, tail int) ([]audit.Record, error) {
	switch {
	case kind != "":
		return store.ListByKind(ctx, kind)
	case tail > 0:
		return store.ListRecent(ctx, tail)
	default:
		return store.ListAll(ctx)
	}
}

func writeTrail(f *OutputFormatter, eco ecosystem.Ecosystem, records []audit.Record, compliant, launch, launched bool) error {
	if f.IsJSON() {
		result := AuditResult{Compliant: compliant, Entries: make([]EntryView, 0, len(records))}
		if launch {
			result.Launched = &launched
		}
		for _, r := range records {
			e := r.Entry
			view := EntryView{
				ID:        r.ID.String(),
				EmittedAt: r.EmittedAt.UTC(),
				Kind:      e.Kind,
				Line:      e.String(),
			}
			if e.Kind == audit.KindNonCompliance {
				group := e.GroupIndex
				view.Group = &group
				view.Component = eco.Name(e.GroupIndex)
				view.Source = e.Source
				view.Reason = e.Reason
			}
			result.Entries = append(result.Entries, view)
		}
		return f.JSON(result)
	}

	for _, r := range records {
		e := r.Entry
		if e.Kind == audit.KindNonCompliance {
			f.Line("%s (%s: source=%q reason=%s)", e, eco.Name(e.GroupIndex), e.Source, e.Reason)
			continue
		}
		f.Line("%s", e)
	}
	return nil
}
