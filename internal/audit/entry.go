package audit

import (
	"fmt"
	"slices"
	"time"

	"launchgate/pkg/platform/sentinel"
)

// Kind tags an audit entry.
type Kind string

const (
	KindNonCompliance   Kind = "non_compliance"
	KindSummary         Kind = "summary"
	KindLaunchConfirmed Kind = "launch_confirmed"
)

// Kinds lists every entry kind.
var Kinds = []Kind{KindNonCompliance, KindSummary, KindLaunchConfirmed}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	if k := Kind(s); slices.Contains(Kinds, k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown audit entry kind %q: %w", s, sentinel.ErrInvalidInput)
}

// TimestampLayout is used when rendering entry timestamps.
const TimestampLayout = time.RFC3339

// Entry is one line of the audit trail. Which fields are meaningful depends
// on Kind:
//   - KindNonCompliance: GroupIndex, Source, Reason
//   - KindSummary: Timestamp, Compliant
//   - KindLaunchConfirmed: Timestamp
type Entry struct {
	Kind       Kind
	GroupIndex int
	Source     string
	Reason     string
	Timestamp  time.Time
	Compliant  bool
}

// NonCompliance records a rejected transaction found in group index.
func NonCompliance(index int, source, reason string) Entry {
	return Entry{Kind: KindNonCompliance, GroupIndex: index, Source: source, Reason: reason}
}

// Summary closes one audit pass with its overall verdict.
func Summary(at time.Time, compliant bool) Entry {
	return Entry{Kind: KindSummary, Timestamp: at, Compliant: compliant}
}

// LaunchConfirmed records the one-way launch transition.
func LaunchConfirmed(at time.Time) Entry {
	return Entry{Kind: KindLaunchConfirmed, Timestamp: at}
}

// Verdict renders the compliance flag as YES or NO.
func (e Entry) Verdict() string {
	if e.Compliant {
		return "YES"
	}
	return "NO"
}

// String renders the entry in the plain-text trail format.
func (e Entry) String() string {
	switch e.Kind {
	case KindNonCompliance:
		return fmt.Sprintf("Non-compliant transaction detected in component %d", e.GroupIndex)
	case KindSummary:
		return fmt.Sprintf("Audit completed at %s Compliance: %s", e.Timestamp.UTC().Format(TimestampLayout), e.Verdict())
	case KindLaunchConfirmed:
		return "Mainnet launched successfully."
	default:
		return fmt.Sprintf("unknown audit entry %q", e.Kind)
	}
}
