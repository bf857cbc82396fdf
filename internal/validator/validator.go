// Package validator applies policy rules to a single transaction.
package validator

import (
	"launchgate/internal/domain"
	"launchgate/internal/policy"
)

// Reason names the rule that decided a check.
type Reason string

const (
	ReasonCompliant        Reason = "compliant"
	ReasonValueMismatch    Reason = "value_mismatch"
	ReasonSourceNotAllowed Reason = "source_not_allowed"
	ReasonImpureCoin       Reason = "impure_coin"
)

// Result is the outcome of checking one transaction.
type Result struct {
	Compliant bool
	Reason    Reason
}

// Validator evaluates transactions against a policy. It holds no mutable
// state and is safe to share.
type Validator struct {
	policy *policy.Policy
}

// New returns a validator for p. A nil policy selects policy.Default().
func New(p *policy.Policy) *Validator {
	if p == nil {
		p = policy.Default()
	}
	return &Validator{policy: p}
}

func (v *Validator) Policy() *policy.Policy {
	return v.policy
}

// Check applies the rule chain and reports which rule decided it.
// Rule priority (fail-fast):
//  1. Value must equal the canonical value
//  2. Source must be allowed and not blacklisted
//  3. Coin must be pure
func (v *Validator) Check(tx domain.Transaction) Result {
	if tx.Value != v.policy.CanonicalValue() {
		return Result{Reason: ReasonValueMismatch}
	}
	if !v.policy.IsSourceAllowed(tx.Source) {
		return Result{Reason: ReasonSourceNotAllowed}
	}
	if !tx.Coin.IsPure() {
		return Result{Reason: ReasonImpureCoin}
	}
	return Result{Compliant: true, Reason: ReasonCompliant}
}

// Validate reports whether tx satisfies every rule.
func (v *Validator) Validate(tx domain.Transaction) bool {
	return v.Check(tx).Compliant
}

// AssignBadge sets the policy badge on a compliant transaction and reports
// whether it did. Non-compliant transactions are left untouched.
func (v *Validator) AssignBadge(tx *domain.Transaction) bool {
	if tx == nil || !v.Validate(*tx) {
		return false
	}
	tx.Coin = tx.Coin.WithBadge(v.policy.BadgeSymbol())
	return true
}
