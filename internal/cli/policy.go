package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// PolicyResult is the JSON shape of the policy command.
type PolicyResult struct {
	CanonicalValue     int64    `json:"canonical_value"`
	BadgeSymbol        string   `json:"badge_symbol"`
	AllowedSources     []string `json:"allowed_sources"`
	BlacklistedSources []string `json:"blacklisted_sources"`
	Overlap            []string `json:"overlap,omitempty"`
}

// NewPolicyCommand creates the policy command.
func NewPolicyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Print the effective compliance policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := rootOpts.runtime(cmd)
			if err != nil {
				return err
			}
			p := rt.policy
			f := rt.formatter

			if f.IsJSON() {
				return f.JSON(PolicyResult{
					CanonicalValue:     p.CanonicalValue(),
					BadgeSymbol:        p.BadgeSymbol(),
					AllowedSources:     p.AllowedSources(),
					BlacklistedSources: p.BlacklistedSources(),
					Overlap:            p.Overlap(),
				})
			}

			f.Line("canonical value:     %d", p.CanonicalValue())
			f.Line("badge symbol:        %s", p.BadgeSymbol())
			f.Line("allowed sources:     %s", strings.Join(p.AllowedSources(), ", "))
			f.Line("blacklisted sources: %s", strings.Join(p.BlacklistedSources(), ", "))
			if overlap := p.Overlap(); len(overlap) > 0 {
				f.Line("overlap (denied):    %s", strings.Join(overlap, ", "))
			}
			return nil
		},
	}
}
