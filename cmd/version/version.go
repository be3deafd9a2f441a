package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set with -ldflags "-X pdf_splitter/cmd/version.version=..."
var version = "dev"

// NewCommand returns a new cobra.Command printing the build version
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Args:  cobra.NoArgs,
		Short: "the version of pdfsplit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "pdfsplit version "+version)
		},
	}
}
