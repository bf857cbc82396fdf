// Package synchronizer reconciles the values reported by ecosystem
// components against the policy's canonical value.
package synchronizer

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"launchgate/internal/policy"
	"launchgate/internal/synchronizer/metrics"
	"launchgate/pkg/platform/sentinel"
)

// Per-component step results reported to metrics.
const (
	resultInSync     = "in_sync"
	resultReconciled = "reconciled"
	resultFailed     = "failed"
)

// TracerName is the instrumentation scope of synchronizer spans.
const TracerName = "launchgate/internal/synchronizer"

// Synchronizer holds the component registry. Each exported method holds the
// registry lock for its full duration.
type Synchronizer struct {
	mu         sync.Mutex
	policy     *policy.Policy
	components map[string]ValueProvider

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(*Synchronizer)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Synchronizer) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Synchronizer) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// New returns an empty synchronizer for p. A nil policy selects
// policy.Default().
func New(p *policy.Policy, opts ...Option) *Synchronizer {
	if p == nil {
		p = policy.Default()
	}
	s := &Synchronizer{
		policy:     p,
		components: make(map[string]ValueProvider),
		tracer:     otel.Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterComponent inserts or replaces the provider for name. The last
// registration wins.
func (s *Synchronizer) RegisterComponent(name string, provider ValueProvider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components[name] = provider
	s.metrics.SetRegistered(len(s.components))
}

// Components returns the registered names in sorted order.
func (s *Synchronizer) Components() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.components))
}

// SynchronizeAll reconciles every component and reports whether every
// per-component step succeeded. Divergence alone is not a failure; only a
// provider or reconciler error is.
func (s *Synchronizer) SynchronizeAll(ctx context.Context) bool {
	return s.Sync(ctx).OK()
}

// Sync reconciles every component and returns the per-component outcomes,
// sorted by component name. Each component is processed independently; a
// failing one does not stop the others.
func (s *Synchronizer) Sync(ctx context.Context) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, span := s.tracer.Start(ctx, "synchronizer.Sync")
	defer span.End()

	target := s.policy.CanonicalValue()
	report := Report{Target: target}
	for _, name := range slices.Sorted(maps.Keys(s.components)) {
		report.Outcomes = append(report.Outcomes, s.synchronizeComponent(ctx, name, s.components[name], target))
	}

	span.SetAttributes(
		attribute.Int("sync.components", len(report.Outcomes)),
		attribute.Int("sync.divergences", len(report.Divergences())),
		attribute.Bool("sync.ok", report.OK()),
	)
	return report
}

func (s *Synchronizer) synchronizeComponent(ctx context.Context, name string, provider ValueProvider, target int64) Outcome {
	out := Outcome{Name: name, Target: target}

	if provider == nil {
		out.Err = fmt.Errorf("component %q has no value provider: %w", name, sentinel.ErrInvalidState)
		s.fail(ctx, out)
		return out
	}

	value, err := provider.CurrentValue(ctx)
	if err != nil {
		out.Err = fmt.Errorf("component %q value: %w: %w", name, sentinel.ErrUnavailable, err)
		s.fail(ctx, out)
		return out
	}
	out.Value = value

	if value == target {
		s.metrics.IncrementComponent(resultInSync)
		return out
	}

	out.Diverged = true
	s.metrics.IncrementDivergences()
	if s.logger != nil {
		s.logger.InfoContext(ctx, "synchronizing component",
			"component", name,
			"from", value,
			"to", target,
		)
	}

	if r, ok := provider.(Reconciler); ok {
		if err := r.Reconcile(ctx, target); err != nil {
			out.Err = fmt.Errorf("component %q reconcile: %w", name, err)
			s.fail(ctx, out)
			return out
		}
		out.Reconciled = true
	}

	s.metrics.IncrementComponent(resultReconciled)
	return out
}

func (s *Synchronizer) fail(ctx context.Context, out Outcome) {
	s.metrics.IncrementComponent(resultFailed)
	if s.logger != nil {
		s.logger.WarnContext(ctx, "component synchronization failed",
			"component", out.Name,
			"error", out.Err,
		)
	}
}
