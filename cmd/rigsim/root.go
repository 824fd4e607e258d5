package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phanxgames/camrig"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "rigsim",
		Short:         "Simulate camera rig presets",
		Long:          "rigsim builds a camera rig from a TOML preset, steps it at a fixed frame time and prints the resulting camera transforms.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !verbose {
				camrig.SetLogger(nil)
				return
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
			camrig.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rig diagnostics to stderr")

	root.AddCommand(newRunCmd(), newTUICmd(), newValidateCmd(), newExampleCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("rigsim version %s\n", version)
		},
	}
}
