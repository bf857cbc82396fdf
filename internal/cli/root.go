package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"launchgate/internal/platform/config"
	"launchgate/internal/platform/logger"
	"launchgate/internal/platform/metrics"
	"launchgate/internal/platform/tracing"
	"launchgate/internal/policy"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	PolicyFile string
	MetricsOut string
	Trace      bool

	cfg config.Config
	now func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the launchgate command tree. Environment settings
// in cfg provide flag defaults.
func NewRootCommand(cfg config.Config) *cobra.Command {
	return newRootCommand(cfg, time.Now)
}

func newRootCommand(cfg config.Config, now func() time.Time) *cobra.Command {
	opts := &RootOptions{cfg: cfg, now: now}

	cmd := &cobra.Command{
		Use:   "launchgate",
		Short: "Fixed-value compliance audits and the mainnet launch gate",
		Long: `launchgate validates ecosystem transactions against the fixed-value policy,
keeps an append-only audit trail, gates the one-time mainnet launch on full
compliance and reconciles component values against the canonical value.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.PolicyFile, "policy", cfg.PolicyFile, "policy YAML file (defaults to the built-in policy)")
	cmd.PersistentFlags().StringVar(&opts.MetricsOut, "metrics-out", cfg.MetricsOut, "write Prometheus metrics for this run to a textfile")
	cmd.PersistentFlags().BoolVar(&opts.Trace, "trace", cfg.Trace, "write OpenTelemetry spans to stderr as JSON")

	cmd.AddCommand(NewAuditCommand(opts))
	cmd.AddCommand(NewLaunchCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewPolicyCommand(opts))

	return cmd
}

// runtime is what every command needs to build governors and synchronizers.
type runtime struct {
	policy    *policy.Policy
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracing   trace.TracerProvider
	shutdown  tracing.Shutdown
	formatter *OutputFormatter
}

func (o *RootOptions) runtime(cmd *cobra.Command) (*runtime, error) {
	level := o.cfg.LogLevel
	if o.Verbose {
		level = "debug"
	}
	log := logger.New(cmd.ErrOrStderr(), o.cfg.LogFormat, level)

	p := policy.Default()
	if o.PolicyFile != "" {
		loaded, err := policy.LoadFile(o.PolicyFile)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load policy", err)
		}
		p = loaded
	}
	if overlap := p.Overlap(); len(overlap) > 0 {
		log.Warn("sources are both allowed and blacklisted; blacklist wins", "sources", overlap)
	}

	tp, shutdown, err := tracing.New(cmd.ErrOrStderr(), "launchgate", o.Trace)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "set up tracing", err)
	}

	return &runtime{
		policy:    p,
		logger:    log,
		metrics:   metrics.New(),
		tracing:   tp,
		shutdown:  shutdown,
		formatter: &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()},
	}, nil
}

// flush ends the run: pending spans are exported and metrics are written when
// --metrics-out is set.
func (o *RootOptions) flush(ctx context.Context, rt *runtime) error {
	if err := rt.shutdown(ctx); err != nil {
		return WrapExitError(ExitCommandError, "flush spans", err)
	}
	if o.MetricsOut == "" {
		return nil
	}
	if err := rt.metrics.WriteTextfile(o.MetricsOut); err != nil {
		return WrapExitError(ExitCommandError, "write metrics", err)
	}
	return nil
}
