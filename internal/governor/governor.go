// Package governor audits ecosystem transactions and gates the one-way
// mainnet launch on full compliance.
package governor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"launchgate/internal/audit"
	"launchgate/internal/domain"
	"launchgate/internal/governor/metrics"
	"launchgate/internal/validator"
)

// State is the launch state. NotLaunched is the initial state and Launched is
// terminal.
type State int

const (
	NotLaunched State = iota
	Launched
)

func (s State) String() string {
	switch s {
	case NotLaunched:
		return "not_launched"
	case Launched:
		return "launched"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// TracerName is the instrumentation scope of governor spans.
const TracerName = "launchgate/internal/governor"

// Launch attempt results reported to metrics and logs.
const (
	launchResultLaunched        = "launched"
	launchResultAborted         = "aborted"
	launchResultAlreadyLaunched = "already_launched"
)

// Governor owns the audit trail and the launch state. Each exported method
// holds the governor lock for its full duration.
type Governor struct {
	mu        sync.Mutex
	validator *validator.Validator
	trail     *audit.Log
	state     State

	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics
	emitter audit.Emitter
	tracer  trace.Tracer
}

type Option func(*Governor)

// WithClock overrides the clock used for summary and launch timestamps. Audit
// latency is always measured on the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Governor) {
		if now != nil {
			g.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Governor) {
		g.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(g *Governor) {
		g.metrics = m
	}
}

// WithEmitter forwards every appended entry to emitter. Emit failures are
// logged and never change audit or launch results.
func WithEmitter(emitter audit.Emitter) Option {
	return func(g *Governor) {
		g.emitter = emitter
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(g *Governor) {
		if tracer != nil {
			g.tracer = tracer
		}
	}
}

// New returns a governor in the NotLaunched state with an empty trail.
func New(v *validator.Validator, opts ...Option) (*Governor, error) {
	if v == nil {
		return nil, fmt.Errorf("validator is required")
	}

	g := &Governor{
		validator: v,
		trail:     audit.NewLog(),
		state:     NotLaunched,
		now:       time.Now,
		tracer:    otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// AuditEcosystemTransactions validates every transaction, group by group,
// records one entry per rejected transaction and closes with a summary.
// It returns true iff no transaction was rejected; an empty ecosystem is
// compliant.
func (g *Governor) AuditEcosystemTransactions(ctx context.Context, groups [][]domain.Transaction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.audit(ctx, groups)
}

// LaunchMainnet audits groups and, when fully compliant, moves the governor
// to Launched. A governor that already launched returns false without
// auditing or touching the trail. Entries from an aborted attempt are kept.
func (g *Governor) LaunchMainnet(ctx context.Context, groups [][]domain.Transaction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	ctx, span := g.tracer.Start(ctx, "governor.LaunchMainnet")
	defer span.End()

	if g.state == Launched {
		g.recordLaunch(ctx, span, launchResultAlreadyLaunched)
		return false
	}

	if !g.audit(ctx, groups) {
		g.recordLaunch(ctx, span, launchResultAborted)
		return false
	}

	g.state = Launched
	g.appendEntry(ctx, audit.LaunchConfirmed(g.now()))
	g.recordLaunch(ctx, span, launchResultLaunched)
	return true
}

// AuditLog returns a live read-only view of the trail.
func (g *Governor) AuditLog() audit.View {
	return g.trail.View()
}

func (g *Governor) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Governor) Launched() bool {
	return g.State() == Launched
}

func (g *Governor) audit(ctx context.Context, groups [][]domain.Transaction) bool {
	ctx, span := g.tracer.Start(ctx, "governor.AuditEcosystemTransactions")
	defer span.End()
	start := time.Now()

	compliant := true
	scanned := 0
	for i, group := range groups {
		for _, tx := range group {
			scanned++
			result := g.validator.Check(tx)
			if result.Compliant {
				continue
			}
			compliant = false
			g.metrics.IncrementNonCompliant(string(result.Reason))
			g.appendEntry(ctx, audit.NonCompliance(i, tx.Source, string(result.Reason)))
		}
	}

	summary := audit.Summary(g.now(), compliant)
	g.appendEntry(ctx, summary)

	g.metrics.IncrementAudit(compliant)
	g.metrics.ObserveAuditLatency(time.Since(start))
	span.SetAttributes(
		attribute.Int("audit.groups", len(groups)),
		attribute.Int("audit.transactions", scanned),
		attribute.Bool("audit.compliant", compliant),
	)

	if g.logger != nil {
		g.logger.InfoContext(ctx, "ecosystem audit completed",
			"groups", len(groups),
			"transactions", scanned,
			"compliance", summary.Verdict(),
			"log_type", "audit",
		)
	}
	return compliant
}

// appendEntry adds entry to the trail and forwards it to the emitter.
func (g *Governor) appendEntry(ctx context.Context, entry audit.Entry) {
	g.trail.Append(entry)

	if entry.Kind == audit.KindNonCompliance && g.logger != nil {
		g.logger.WarnContext(ctx, "non-compliant transaction detected",
			"component", entry.GroupIndex,
			"source", entry.Source,
			"reason", entry.Reason,
			"log_type", "audit",
		)
	}

	if g.emitter == nil {
		return
	}
	if err := g.emitter.Emit(ctx, entry); err != nil && g.logger != nil {
		g.logger.WarnContext(ctx, "failed to emit audit entry",
			"kind", entry.Kind,
			"error", err,
		)
	}
}

func (g *Governor) recordLaunch(ctx context.Context, span trace.Span, result string) {
	g.metrics.IncrementLaunch(result)
	span.SetAttributes(attribute.String("launch.result", result))

	if g.logger == nil {
		return
	}
	if result == launchResultLaunched {
		g.logger.InfoContext(ctx, "mainnet launched", "result", result, "log_type", "audit")
		return
	}
	g.logger.WarnContext(ctx, "mainnet launch refused", "result", result, "log_type", "audit")
}
