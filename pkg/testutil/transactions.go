package testutil

import (
	"launchgate/internal/domain"
	"launchgate/internal/policy"
)

// CanonicalValue is the default policy value, for building fixtures.
const CanonicalValue = policy.DefaultCanonicalValue

// CompliantTx returns a pure transaction at the canonical value.
func CompliantTx(source string) domain.Transaction {
	return domain.NewTransaction(source, CanonicalValue, true)
}

// ValueTx returns a pure transaction from mining with the given value.
func ValueTx(value int64) domain.Transaction {
	return domain.NewTransaction("mining", value, true)
}

// ImpureTx returns an impure transaction at the canonical value.
func ImpureTx(source string) domain.Transaction {
	return domain.NewTransaction(source, CanonicalValue, false)
}

// Groups builds an ecosystem from per-component transaction lists.
func Groups(groups ...[]domain.Transaction) [][]domain.Transaction {
	return groups
}

// Group is shorthand for one component's transactions.
func Group(txs ...domain.Transaction) []domain.Transaction {
	return txs
}
