// Package main is the entry point for the wheel CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	namesFile  string
	rig        bool
	durationMs int
	seed       int64
	policy     string
	logLevel   string
}

func rootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "wheel",
		Short:        "Wheel of Names: spin a wheel to pick a name",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeTUI(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to wheel.toml (default: search upward from cwd)")
	flags.StringVar(&opts.namesFile, "names", "", "names file, one name per line")
	flags.BoolVar(&opts.rig, "rig", true, "rig mode: position 4 always wins when there are at least 4 names")
	flags.IntVar(&opts.durationMs, "duration", 0, "spin duration in milliseconds (1000-15000)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed (0 = seed from the clock)")
	flags.StringVar(&opts.policy, "angle-policy", "", `rotation policy: "absolute" or "forward"`)
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		spinCmd(opts),
		sectorsCmd(opts),
		historyCmd(opts),
		initCmd(),
	)
	return root
}
