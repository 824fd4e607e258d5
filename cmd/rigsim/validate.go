package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/camrig"
	"github.com/phanxgames/camrig/preset"
)

func newValidateCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate [preset...]",
		Short: "Check that preset files parse and build",
		Long: `Check that preset files parse and build. With --watch a single preset is
re-validated every time it is saved, until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch takes exactly one preset, got %d", len(args))
				}
				return watchPreset(cmd, args[0])
			}
			var failed int
			for _, path := range args {
				kinds, err := validatePreset(path)
				if err != nil {
					failed++
					cmd.PrintErrf("%s: %v\n", path, err)
					continue
				}
				cmd.Printf("%s: ok (%s)\n", path, strings.Join(kinds, " -> "))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d presets invalid", failed, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-validate the preset whenever it changes")
	return cmd
}

func watchPreset(cmd *cobra.Command, path string) error {
	return preset.Watch(cmd.Context(), path, func(p preset.Preset, err error) {
		if err == nil {
			err = buildPreset(p)
		}
		if err != nil {
			cmd.PrintErrf("%s: %v\n", path, err)
			return
		}
		cmd.Printf("%s: ok (%s)\n", path, strings.Join(p.Kinds(), " -> "))
	})
}

func validatePreset(path string) ([]string, error) {
	p, err := preset.Load(path)
	if err != nil {
		return nil, err
	}
	if err := buildPreset(p); err != nil {
		return nil, err
	}
	return p.Kinds(), nil
}

// buildPreset builds p with its declared handedness and discards the rig.
func buildPreset(p preset.Preset) error {
	left, err := p.LeftHanded()
	if err != nil {
		return err
	}
	if left {
		_, err = preset.Build[camrig.LeftHanded](p)
	} else {
		_, err = preset.Build[camrig.RightHanded](p)
	}
	return err
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example third-person preset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := preset.Encode(preset.Example())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
