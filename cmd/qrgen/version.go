package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Overridden at build time with -ldflags "-X main.buildVersion=...".
	buildVersion = "0.2.0"
	buildCommit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "qrgen %s (%s) %s/%s %s\n",
			buildVersion, buildCommit, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
