package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridden by -ldflags on release builds; module builds fall back to
// the version stamped by the Go toolchain.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the wordgym version",
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if v == "" {
			v = "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				v = info.Main.Version
			}
		}
		fmt.Printf("wordgym %s\n", v)
	},
}
