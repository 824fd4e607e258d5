package camrig

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

type rh = RightHanded

// newPipeline returns a fresh, deterministic driver list used by several
// tests. Each call returns new driver instances.
func newPipeline() []Driver[rh] {
	return []Driver[rh]{
		NewPosition[rh](mgl64.Vec3{4, 3, 8}),
		NewSmoothPosition[rh](1.25).Predictive(true),
		NewSmoothPosition[rh](2.5),
		NewMaintainDistance[rh](mgl64.Vec3{2, 1, 2}, 4, 10),
		NewLookAt[rh](mgl64.Vec3{2, 2, 2}).TrackingSmoothness(1.25),
		NewArm[rh](mgl64.Vec3{0.5, 0, 0}),
	}
}

func buildRig(drivers []Driver[rh]) *Rig[rh] {
	b := NewBuilder[rh]()
	for _, d := range drivers {
		b.With(d)
	}
	return b.Build()
}

// fold runs drivers the way a rig does, starting from identity.
func fold(drivers []Driver[rh], dt float64) Transform[rh] {
	t := Identity[rh]()
	for _, d := range drivers {
		t = d.Drive(UpdateParams[rh]{Parent: t, DeltaTime: dt})
	}
	return t
}

func TestRigUpdateMatchesManualFold(t *testing.T) {
	rig := buildRig(newPipeline())
	manual := newPipeline()
	fold(manual, 0) // Build primes the rig with a zero-time update

	rigPos := DriverMut[*Position[rh]](rig)
	manualPos := manual[0].(*Position[rh])

	for frame := range 120 {
		step := mgl64.Vec3{0.05 * float64(frame%7), 0, -0.03}
		rigPos.Translate(step)
		manualPos.Translate(step)

		dt := 1.0 / 60
		if frame%10 == 0 {
			dt = 1.0 / 30
		}
		got := rig.Update(dt)
		want := fold(manual, dt)
		if got != want {
			t.Fatalf("frame %d: rig.Update = %v, manual fold = %v", frame, got, want)
		}
		if rig.FinalTransform != got {
			t.Fatalf("frame %d: FinalTransform not cached", frame)
		}
	}
}

func TestEmptyRigIsIdentity(t *testing.T) {
	rig := NewBuilder[rh]().Build()
	if got := rig.Update(1); got != Identity[rh]() {
		t.Errorf("empty rig = %v, want identity", got)
	}
	if rig.Len() != 0 {
		t.Errorf("Len = %d, want 0", rig.Len())
	}
}

func TestBuildRunsInitialUpdate(t *testing.T) {
	rig := NewBuilder[rh]().With(NewPosition[rh](mgl64.Vec3{1, 2, 3})).Build()
	assertVec(t, "FinalTransform.Position", rig.FinalTransform.Position, mgl64.Vec3{1, 2, 3}, 0)
}

func TestBuilderOrderIsFixed(t *testing.T) {
	b := NewBuilder[rh]().
		With(NewPosition[rh](mgl64.Vec3{1, 0, 0})).
		With(NewArm[rh](mgl64.Vec3{0, 0, 1}))
	rig := b.Build()

	// Appending to the builder afterwards does not affect the built rig.
	b.With(NewPosition[rh](mgl64.Vec3{9, 9, 9}))
	if rig.Len() != 2 {
		t.Fatalf("Len = %d, want 2", rig.Len())
	}
	assertVec(t, "position", rig.Update(0.1).Position, mgl64.Vec3{1, 0, 1}, epsilon)

	// Reversed order: the Arm sees identity, the Position overrides it.
	rev := NewBuilder[rh]().
		With(NewArm[rh](mgl64.Vec3{0, 0, 1})).
		With(NewPosition[rh](mgl64.Vec3{1, 0, 0})).
		Build()
	assertVec(t, "reversed position", rev.Update(0.1).Position, mgl64.Vec3{1, 0, 0}, epsilon)
}

func TestRigSanitizesDelta(t *testing.T) {
	rig := NewBuilder[rh]().
		With(NewPosition[rh](mgl64.Vec3{0, 0, 0})).
		With(NewSmoothPosition[rh](1)).
		Build()
	before := rig.FinalTransform
	DriverMut[*Position[rh]](rig).Position = mgl64.Vec3{10, 0, 0}
	if got := rig.Update(-1); got != before {
		t.Errorf("negative dt moved the camera: %v -> %v", before, got)
	}
}

// --- typed lookup ---

func TestDriverMutChangesNextUpdate(t *testing.T) {
	rig := NewBuilder[rh]().
		With(NewPosition[rh](mgl64.Vec3{0, 0, 5})).
		With(NewLookAt[rh](mgl64.Vec3{0, 0, 0})).
		Build()
	assertVec(t, "initial forward", rig.Update(1.0/60).Forward(), mgl64.Vec3{0, 0, -1}, 1e-9)

	DriverMut[*LookAt[rh]](rig).Target = mgl64.Vec3{10, 0, 5}
	assertVec(t, "retargeted forward", rig.Update(1.0/60).Forward(), mgl64.Vec3{1, 0, 0}, 1e-9)
}

func TestDriverMutReturnsFirstMatch(t *testing.T) {
	first := NewPosition[rh](mgl64.Vec3{1, 0, 0})
	second := NewPosition[rh](mgl64.Vec3{2, 0, 0})
	rig := NewBuilder[rh]().With(first).With(second).Build()

	if got := DriverMut[*Position[rh]](rig); got != first {
		t.Errorf("DriverMut returned %p, want first driver %p", got, first)
	}
}

func TestDriverMutPanicsWhenMissing(t *testing.T) {
	rig := NewBuilder[rh]().With(NewPosition[rh](mgl64.Vec3{})).Build()
	before := rig.FinalTransform

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("DriverMut did not panic for a missing driver")
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, "LookAt") {
			t.Errorf("panic message %q does not name the requested type", msg)
		}
		if rig.FinalTransform != before {
			t.Error("failed lookup modified the rig")
		}
	}()
	DriverMut[*LookAt[rh]](rig)
}

func TestTryDriver(t *testing.T) {
	rig := NewBuilder[rh]().With(NewArm[rh](mgl64.Vec3{})).Build()
	if _, ok := TryDriver[*LookAt[rh]](rig); ok {
		t.Error("TryDriver found a LookAt that is not there")
	}
	arm, ok := TryDriver[*Arm[rh]](rig)
	if !ok || arm == nil {
		t.Fatal("TryDriver did not find the Arm")
	}
}

// --- nesting ---

func TestNestedRigActsAsDriver(t *testing.T) {
	inner := NewBuilder[rh]().
		With(NewPosition[rh](mgl64.Vec3{1, 2, 3})).
		With(NewArm[rh](mgl64.Vec3{0, 1, 0})).
		Build()
	outer := NewBuilder[rh]().
		With(NewPosition[rh](mgl64.Vec3{100, 100, 100})).
		With(inner).
		With(NewArm[rh](mgl64.Vec3{1, 0, 0})).
		Build()

	got := outer.Update(0.1)
	assertVec(t, "position", got.Position, mgl64.Vec3{2, 3, 3}, epsilon)

	// The outer lookup stops at the nested rig.
	if p := DriverMut[*Position[rh]](outer); p.Position != (mgl64.Vec3{100, 100, 100}) {
		t.Errorf("outer lookup reached into the nested rig: %v", p.Position)
	}
	if _, ok := TryDriver[*Rig[rh]](outer); !ok {
		t.Error("nested rig not found by type")
	}
}

func TestMovableLookAtAccessorMatchesDirectMutation(t *testing.T) {
	camera := mgl64.Vec3{4, 3, 8}
	target := mgl64.Vec3{2, 1.01, 2}

	outer := NewBuilder[rh]().With(NewMovableLookAt[rh](camera, target)).Build()

	direct := NewBuilder[rh]().
		With(NewPosition[rh](camera)).
		With(NewSmoothPosition[rh](1.25).Predictive(true)).
		With(NewSmoothPosition[rh](2.5)).
		With(NewMaintainDistance[rh](target, 4, 10)).
		With(NewLookAt[rh](target.Add(mgl64.Vec3{0, 1, 0})).TrackingSmoothness(1.25)).
		Build()

	for frame := range 90 {
		target = target.Add(mgl64.Vec3{0.05, 0, 0.02})
		if frame > 45 {
			camera = camera.Add(mgl64.Vec3{-0.1, 0, 0})
		}

		DriverMut[*MovableLookAt[rh]](outer).SetPositionTarget(camera, target)

		DriverMut[*Position[rh]](direct).Position = camera
		DriverMut[*LookAt[rh]](direct).Target = target.Add(mgl64.Vec3{0, 1, 0})
		DriverMut[*MaintainDistance[rh]](direct).Focal = target

		got := outer.Update(1.0 / 60)
		want := direct.Update(1.0 / 60)
		if got != want {
			t.Fatalf("frame %d: composite = %v, direct = %v", frame, got, want)
		}
	}
	if m := DriverMut[*MovableLookAt[rh]](outer); m.Transform() != direct.FinalTransform {
		t.Error("MovableLookAt.Transform does not report the inner result")
	}
}

// --- zero-time updates ---

func TestZeroDeltaRepeatsPreviousOutput(t *testing.T) {
	drivers := map[string]func() Driver[rh]{
		"position":        func() Driver[rh] { return NewPosition[rh](mgl64.Vec3{1, 2, 3}) },
		"rotation":        func() Driver[rh] { return NewRotation[rh](mgl64.QuatRotate(1, mgl64.Vec3{0, 1, 0})) },
		"smooth":          func() Driver[rh] { return NewSmoothPositionRotation[rh](1, 1) },
		"smooth predict":  func() Driver[rh] { return NewSmoothPositionRotation[rh](1, 1).Predictive(true) },
		"arm":             func() Driver[rh] { return NewArm[rh](mgl64.Vec3{0, 1, 4}) },
		"look at":         func() Driver[rh] { return NewLookAt[rh](mgl64.Vec3{5, 0, 0}).TrackingSmoothness(0.5) },
		"yaw pitch":       func() Driver[rh] { return NewYawPitch[rh]() },
		"lock position":   func() Driver[rh] { return NewLockPosition[rh]().LockY(1) },
		"maintain":        func() Driver[rh] { return NewMaintainDistance[rh](mgl64.Vec3{}, 4, 10) },
		"glide":           func() Driver[rh] { return NewGlide[rh](mgl64.Vec3{}) },
		"bounds":          func() Driver[rh] { return NewBounds[rh](Box{Max: mgl64.Vec3{5, 5, 5}}) },
		"movable look at": func() Driver[rh] { return NewMovableLookAt[rh](mgl64.Vec3{4, 3, 8}, mgl64.Vec3{}) },
	}
	for name, mk := range drivers {
		t.Run(name, func(t *testing.T) {
			// A moving, turning source in front of the driver under test.
			src := NewPosition[rh](mgl64.Vec3{})
			yaw := NewYawPitch[rh]()
			rig := NewBuilder[rh]().With(src).With(yaw).With(mk()).Build()

			for i := range 20 {
				src.Translate(mgl64.Vec3{0.3, 0.1, -0.2})
				yaw.RotateYawPitch(3, 1)
				if g, ok := TryDriver[*Glide[rh]](rig); ok && i == 5 {
					g.GlideTo(mgl64.Vec3{3, 0, 0}, 1, nil)
				}
				rig.Update(1.0 / 60)
			}
			prev := rig.FinalTransform
			for range 3 {
				if got := rig.Update(0); got != prev {
					t.Fatalf("Update(0) = %v, want previous %v", got, prev)
				}
			}
			assertUnit(t, "rotation", prev.Rotation)
			if !finiteVec(prev.Position) {
				t.Errorf("non-finite position %v", prev.Position)
			}
		})
	}
}
