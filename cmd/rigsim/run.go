package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/phanxgames/camrig"
	"github.com/phanxgames/camrig/preset"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var errNoMover = errors.New("--velocity needs a position or glide driver in the preset")

type runOptions struct {
	presetPath string
	frames     int
	dt         float64
	format     string
	handedness string
	velocity   []float64
}

// frameRecord is one line of JSON output.
type frameRecord struct {
	Frame    int        `json:"frame"`
	Time     float64    `json:"time"`
	Position [3]float64 `json:"position"`
	Rotation [4]float64 `json:"rotation"`
	Forward  [3]float64 `json:"forward"`
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a preset rig and print its transforms",
		Long: `Build the rig described by a preset and update it a fixed number of frames.
Without --preset the built-in third person example is used. --velocity moves
the preset's first position driver every frame, which is how a host would feed
a followed object into the rig.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreset(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.presetPath, "preset", "p", "", "preset TOML file")
	f.IntVarP(&opts.frames, "frames", "n", 60, "number of frames to simulate")
	f.Float64Var(&opts.dt, "dt", 1.0/60, "frame time in seconds")
	f.StringVarP(&opts.format, "format", "o", formatText, "output format: text or json")
	f.StringVar(&opts.handedness, "handedness", "", "override the preset handedness: right or left")
	f.Float64SliceVar(&opts.velocity, "velocity", nil, "per-second x,y,z motion of the first position driver")
	return cmd
}

func runPreset(w io.Writer, opts runOptions) error {
	if opts.frames < 0 {
		return fmt.Errorf("--frames must be >= 0, got %d", opts.frames)
	}
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatJSON)
	}
	if opts.velocity != nil && len(opts.velocity) != 3 {
		return fmt.Errorf("--velocity needs 3 components, got %d", len(opts.velocity))
	}

	p := preset.Example()
	if opts.presetPath != "" {
		var err error
		if p, err = preset.Load(opts.presetPath); err != nil {
			return err
		}
	}
	if opts.handedness != "" {
		p.Handedness = opts.handedness
	}
	left, err := p.LeftHanded()
	if err != nil {
		return err
	}
	if left {
		return simulate[camrig.LeftHanded](w, p, opts)
	}
	return simulate[camrig.RightHanded](w, p, opts)
}

func simulate[H camrig.Handedness](w io.Writer, p preset.Preset, opts runOptions) error {
	rig, err := preset.Build[H](p)
	if err != nil {
		return err
	}

	var move func(delta mgl64.Vec3)
	if opts.velocity != nil {
		if move = mover(rig); move == nil {
			return errNoMover
		}
	}
	velocity := mgl64.Vec3{}
	if opts.velocity != nil {
		velocity = mgl64.Vec3{opts.velocity[0], opts.velocity[1], opts.velocity[2]}
	}

	enc := json.NewEncoder(w)
	for frame := 1; frame <= opts.frames; frame++ {
		if move != nil {
			move(velocity.Mul(opts.dt))
		}
		xf := rig.Update(opts.dt)
		rec := record(frame, float64(frame)*opts.dt, xf)
		if opts.format == formatJSON {
			err = enc.Encode(rec)
		} else {
			err = writeText(w, rec)
		}
		if err != nil {
			return fmt.Errorf("write frame %d: %w", frame, err)
		}
	}
	return nil
}

// mover returns a function translating the rig's first position source, or
// nil if it has none.
func mover[H camrig.Handedness](rig *camrig.Rig[H]) func(mgl64.Vec3) {
	for _, d := range rig.Drivers() {
		switch d := d.(type) {
		case *camrig.Position[H]:
			return d.Translate
		case *camrig.Glide[H]:
			return func(delta mgl64.Vec3) { d.Position = d.Position.Add(delta) }
		}
	}
	return nil
}

func record[H camrig.Handedness](frame int, t float64, xf camrig.Transform[H]) frameRecord {
	q := xf.Rotation
	return frameRecord{
		Frame:    frame,
		Time:     t,
		Position: xf.Position,
		Rotation: [4]float64{q.W, q.V[0], q.V[1], q.V[2]},
		Forward:  xf.Forward(),
	}
}

func writeText(w io.Writer, r frameRecord) error {
	_, err := fmt.Fprintf(w,
		"frame %4d  t=%7.3f  pos=(%8.4f %8.4f %8.4f)  fwd=(%7.4f %7.4f %7.4f)\n",
		r.Frame, r.Time,
		r.Position[0], r.Position[1], r.Position[2],
		r.Forward[0], r.Forward[1], r.Forward[2])
	return err
}
