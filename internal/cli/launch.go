package cli

import "github.com/spf13/cobra"

// NewLaunchCommand creates the launch command.
func NewLaunchCommand(rootOpts *RootOptions) *cobra.Command {
	var trailOpts trailOptions

	cmd := &cobra.Command{
		Use:   "launch <transactions.yaml>",
		Short: "Launch mainnet if the whole ecosystem is compliant",
		Long: `Audit the ecosystem and launch mainnet only when every transaction of every
component is compliant. The audit trail is printed either way.

Exits 1 when the launch is aborted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGovernor(rootOpts, &trailOpts, cmd, args[0], true)
		},
	}
	addTrailFlags(cmd, &trailOpts)

	return cmd
}
