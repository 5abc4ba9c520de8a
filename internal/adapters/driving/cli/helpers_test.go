package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores the defaults of a command's scalar flags.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
