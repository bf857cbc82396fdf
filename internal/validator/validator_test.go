package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchgate/internal/domain"
	"launchgate/internal/policy"
)

func TestCheck(t *testing.T) {
	v := New(policy.Default())

	tests := []struct {
		name     string
		tx       domain.Transaction
		expected Result
	}{
		{
			name:     "valid transaction",
			tx:       domain.NewTransaction("mining", 314159, true),
			expected: Result{Compliant: true, Reason: ReasonCompliant},
		},
		{
			name:     "invalid value",
			tx:       domain.NewTransaction("mining", 1000, true),
			expected: Result{Reason: ReasonValueMismatch},
		},
		{
			name:     "blacklisted source",
			tx:       domain.NewTransaction("exchange", 314159, true),
			expected: Result{Reason: ReasonSourceNotAllowed},
		},
		{
			name:     "unknown source",
			tx:       domain.NewTransaction("faucet", 314159, true),
			expected: Result{Reason: ReasonSourceNotAllowed},
		},
		{
			name:     "impure coin",
			tx:       domain.NewTransaction("mining", 314159, false),
			expected: Result{Reason: ReasonImpureCoin},
		},
		{
			name:     "value rule is checked first",
			tx:       domain.NewTransaction("exchange", 1, false),
			expected: Result{Reason: ReasonValueMismatch},
		},
		{
			name:     "source rule precedes purity",
			tx:       domain.NewTransaction("exchange", 314159, false),
			expected: Result{Reason: ReasonSourceNotAllowed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Check(tt.tx)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected.Compliant, v.Validate(tt.tx))
		})
	}
}

// Validate must equal the conjunction of the three rules for every
// combination of inputs.
func TestValidate_IsConjunctionOfRules(t *testing.T) {
	p := policy.Default()
	v := New(p)

	sources := []string{"mining", "p2p", "app", "exchange", "faucet", ""}
	values := []int64{314159, 314158, 0, -314159}
	for _, source := range sources {
		for _, value := range values {
			for _, pure := range []bool{true, false} {
				tx := domain.NewTransaction(source, value, pure)
				expected := value == p.CanonicalValue() && p.IsSourceAllowed(source) && pure
				assert.Equal(t, expected, v.Validate(tx), "source=%q value=%d pure=%v", source, value, pure)
			}
		}
	}
}

func TestNew_NilPolicyUsesDefault(t *testing.T) {
	v := New(nil)
	require.NotNil(t, v.Policy())
	assert.True(t, v.Validate(domain.NewTransaction("app", 314159, true)))
}

func TestAssignBadge(t *testing.T) {
	v := New(policy.Default())

	t.Run("badges compliant transaction", func(t *testing.T) {
		tx := domain.NewTransaction("p2p", 314159, true)
		assert.True(t, v.AssignBadge(&tx))
		assert.True(t, tx.Coin.HasBadge())
		assert.Equal(t, "🌟", tx.Coin.Badge())
	})

	t.Run("leaves non-compliant transaction untouched", func(t *testing.T) {
		tx := domain.NewTransaction("exchange", 314159, true)
		before := tx
		assert.False(t, v.AssignBadge(&tx))
		assert.Equal(t, before, tx)
		assert.False(t, tx.Coin.HasBadge())
	})

	t.Run("is idempotent", func(t *testing.T) {
		tx := domain.NewTransaction("mining", 314159, true)
		require.True(t, v.AssignBadge(&tx))
		first := tx
		assert.True(t, v.AssignBadge(&tx))
		assert.Equal(t, first, tx)
	})

	t.Run("badge does not affect validity", func(t *testing.T) {
		tx := domain.NewTransaction("mining", 314159, true)
		v.AssignBadge(&tx)
		assert.True(t, v.Validate(tx))
	})

	t.Run("nil transaction", func(t *testing.T) {
		assert.False(t, v.AssignBadge(nil))
	})

	t.Run("uses policy badge", func(t *testing.T) {
		spec := policy.DefaultSpec()
		spec.BadgeSymbol = "PI"
		p, err := policy.New(spec)
		require.NoError(t, err)

		tx := domain.NewTransaction("mining", 314159, true)
		require.True(t, New(p).AssignBadge(&tx))
		assert.Equal(t, "PI", tx.Coin.Badge())
	})
}
