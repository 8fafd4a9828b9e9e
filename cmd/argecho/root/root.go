package root

import (
	"github.com/flarebyte/argecho/internal/catalog"
	"github.com/flarebyte/argecho/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for argecho. argv is echoed verbatim.
//
// cobra intercepts "__complete" and "completion" even with flag parsing
// disabled, so the tokens are bound here instead of going through SetArgs.
func NewRootCmd(argv []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "argecho [args...]",
		Short:              "Print a banner and echo the given arguments",
		DisableFlagParsing: true,
		Args:               cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := catalog.Default()
			if err != nil {
				return err
			}
			// Output is best effort: a closed stdout is not a failure.
			_ = greeting.Write(cmd.OutOrStdout(), c, argv)
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	// Never fall back to os.Args.
	cmd.SetArgs([]string{})
	return cmd
}
