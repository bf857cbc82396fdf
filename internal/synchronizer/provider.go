package synchronizer

import "context"

// ValueProvider reports a component's current value. Implementations are
// owned by the component; the synchronizer never inspects how the value is
// computed.
type ValueProvider interface {
	CurrentValue(ctx context.Context) (int64, error)
}

// Reconciler is implemented by providers whose component can be told to move
// to the canonical value. Providers without it are only reported.
type Reconciler interface {
	Reconcile(ctx context.Context, target int64) error
}

// ProviderFunc adapts a plain function to ValueProvider.
type ProviderFunc func(ctx context.Context) (int64, error)

func (f ProviderFunc) CurrentValue(ctx context.Context) (int64, error) {
	return f(ctx)
}

// StaticValue is an in-memory provider that always reports the same value.
type StaticValue int64

func (v StaticValue) CurrentValue(context.Context) (int64, error) {
	return int64(v), nil
}

// ReconcilingProvider is a provider that can also apply the canonical value.
type ReconcilingProvider interface {
	ValueProvider
	Reconciler
}
