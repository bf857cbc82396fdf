// Package policy holds the fixed-value compliance rules shared by the
// validator and the synchronizer. A Policy is immutable once built.
package policy

import (
	"fmt"
	"slices"
	"strings"

	"launchgate/pkg/platform/sentinel"
	pstrings "launchgate/pkg/platform/strings"
)

// Default policy values.
const (
	DefaultCanonicalValue int64 = 314159
	DefaultBadgeSymbol          = "🌟"
)

var (
	defaultAllowed     = []string{"mining", "p2p", "contribution", "marketplace", "app"}
	defaultBlacklisted = []string{"exchange"}
)

type sourceSet map[string]struct{}

func (s sourceSet) has(source string) bool {
	_, ok := s[source]
	return ok
}

func (s sourceSet) sorted() []string {
	return pstrings.SortedKeys(s)
}

// Policy is the canonical value, the source allow/deny lists and the badge
// awarded to compliant transactions.
type Policy struct {
	canonicalValue int64
	allowed        sourceSet
	blacklisted    sourceSet
	badgeSymbol    string
}

// Spec is the raw input for building a Policy.
type Spec struct {
	CanonicalValue     int64
	AllowedSources     []string
	BlacklistedSources []string
	BadgeSymbol        string
}

// New validates spec and builds an immutable Policy. Source names are trimmed
// and deduplicated; empty names are dropped.
func New(spec Spec) (*Policy, error) {
	if spec.CanonicalValue <= 0 {
		return nil, fmt.Errorf("canonical value must be positive, got %d: %w", spec.CanonicalValue, sentinel.ErrInvalidInput)
	}
	badge := strings.TrimSpace(spec.BadgeSymbol)
	if badge == "" {
		return nil, fmt.Errorf("badge symbol is required: %w", sentinel.ErrInvalidInput)
	}

	return &Policy{
		canonicalValue: spec.CanonicalValue,
		allowed:        newSourceSet(spec.AllowedSources),
		blacklisted:    newSourceSet(spec.BlacklistedSources),
		badgeSymbol:    badge,
	}, nil
}

// Default returns the stock policy: canonical value 314159, five allowed
// origins and "exchange" blacklisted.
func Default() *Policy {
	p, err := New(DefaultSpec())
	if err != nil {
		panic(fmt.Sprintf("default policy is invalid: %v", err))
	}
	return p
}

// DefaultSpec returns the spec behind Default. Callers may override fields
// before passing it to New.
func DefaultSpec() Spec {
	return Spec{
		CanonicalValue:     DefaultCanonicalValue,
		AllowedSources:     slices.Clone(defaultAllowed),
		BlacklistedSources: slices.Clone(defaultBlacklisted),
		BadgeSymbol:        DefaultBadgeSymbol,
	}
}

func newSourceSet(values []string) sourceSet {
	return pstrings.Set(values)
}

// IsSourceAllowed reports whether source is allowed and not blacklisted.
// The blacklist always wins.
func (p *Policy) IsSourceAllowed(source string) bool {
	return p.allowed.has(source) && !p.blacklisted.has(source)
}

func (p *Policy) CanonicalValue() int64 {
	return p.canonicalValue
}

func (p *Policy) BadgeSymbol() string {
	return p.badgeSymbol
}

// AllowedSources returns the allowed origins in sorted order.
func (p *Policy) AllowedSources() []string {
	return p.allowed.sorted()
}

// BlacklistedSources returns the blacklisted origins in sorted order.
func (p *Policy) BlacklistedSources() []string {
	return p.blacklisted.sorted()
}

// Overlap lists sources present in both sets. They are never allowed.
func (p *Policy) Overlap() []string {
	var out []string
	for _, s := range p.allowed.sorted() {
		if p.blacklisted.has(s) {
			out = append(out, s)
		}
	}
	return out
}
