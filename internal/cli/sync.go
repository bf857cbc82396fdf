package cli

import (
	"github.com/spf13/cobra"

	"launchgate/internal/ecosystem"
	"launchgate/internal/synchronizer"
)

// SyncResult is the JSON shape of the sync command.
type SyncResult struct {
	OK         bool          `json:"ok"`
	Target     int64         `json:"target"`
	Components []SyncOutcome `json:"components"`
}

type SyncOutcome struct {
	Name       string `json:"name"`
	Value      int64  `json:"value"`
	Diverged   bool   `json:"diverged"`
	Reconciled bool   `json:"reconciled"`
	Error      string `json:"error,omitempty"`
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync <components.yaml>",
		Short: "Reconcile component values against the canonical value",
		Long: `Read a snapshot of component values, report every component whose value
diverges from the canonical value and reconcile it.

With --dry-run divergences are only reported. Exits 1 when a component could
not be synchronized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(rootOpts, cmd, args[0], dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report divergences without reconciling")

	return cmd
}

func runSync(opts *RootOptions, cmd *cobra.Command, path string, dryRun bool) error {
	rt, err := opts.runtime(cmd)
	if err != nil {
		return err
	}

	snap, err := ecosystem.LoadSnapshot(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load snapshot", err)
	}

	s := synchronizer.New(rt.policy,
		synchronizer.WithLogger(rt.logger),
		synchronizer.WithMetrics(rt.metrics.Synchronizer),
		synchronizer.WithTracer(rt.tracing.Tracer(synchronizer.TracerName)),
	)
	if dryRun {
		for _, c := range snap.Components {
			s.RegisterComponent(c.Name, synchronizer.StaticValue(c.Value))
		}
	} else {
		snap.Register(s)
	}

	ctx := cmd.Context()
	report := s.Sync(ctx)
	if err := writeReport(rt.formatter, report); err != nil {
		return err
	}
	if err := opts.flush(ctx, rt); err != nil {
		return err
	}

	if !report.OK() {
		return NewExitError(ExitFailure, "synchronization failed")
	}
	return nil
}

func writeReport(f *OutputFormatter, report synchronizer.Report) error {
	if f.IsJSON() {
		result := SyncResult{OK: report.OK(), Target: report.Target, Components: make([]SyncOutcome, 0, len(report.Outcomes))}
		for _, o := range report.Outcomes {
			out := SyncOutcome{Name: o.Name, Value: o.Value, Diverged: o.Diverged, Reconciled: o.Reconciled}
			if o.Err != nil {
				out.Error = o.Err.Error()
			}
			result.Components = append(result.Components, out)
		}
		return f.JSON(result)
	}

	for _, o := range report.Outcomes {
		switch {
		case o.Err != nil:
			f.Line("%s: failed: %v", o.Name, o.Err)
		case !o.Diverged:
			f.Line("%s: in sync (%d)", o.Name, o.Value)
		case o.Reconciled:
			f.Line("%s: %d -> %d (reconciled)", o.Name, o.Value, o.Target)
		default:
			f.Line("%s: %d -> %d (reported)", o.Name, o.Value, o.Target)
		}
	}
	f.Line("%d component(s), %d divergence(s)", len(report.Outcomes), len(report.Divergences()))
	return nil
}
