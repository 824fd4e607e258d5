package camrig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMaintainDistance(t *testing.T) {
	rot := mgl64.QuatRotate(0.4, mgl64.Vec3{0, 1, 0})
	tests := []struct {
		name     string
		parent   mgl64.Vec3
		wantDist float64
	}{
		{"beyond max pulls in", mgl64.Vec3{0, 3, 15}, 10},
		{"inside min pushes out", mgl64.Vec3{0, 3, 2}, 4},
		{"diagonal beyond max", mgl64.Vec3{12, -1, 9}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewMaintainDistance[rh](mgl64.Vec3{0, 0, 0}, 4, 10)
			parent := Transform[rh]{Position: tt.parent, Rotation: rot}
			got := d.Drive(UpdateParams[rh]{Parent: parent, DeltaTime: 1.0 / 60})

			inPlane := mgl64.Vec3{got.Position.X(), 0, got.Position.Z()}
			assertNear(t, "in-plane distance", inPlane.Len(), tt.wantDist)
			assertNear(t, "y", got.Position.Y(), tt.parent.Y())
			if got.Rotation != rot {
				t.Errorf("rotation changed: %v -> %v", rot, got.Rotation)
			}

			// Direction from the focal point is preserved.
			before := mgl64.Vec3{tt.parent.X(), 0, tt.parent.Z()}.Normalize()
			assertVec(t, "direction", inPlane.Normalize(), before, 1e-9)
		})
	}
}

func TestMaintainDistanceWithinRangeIsUntouched(t *testing.T) {
	d := NewMaintainDistance[rh](mgl64.Vec3{0, 0, 0}, 4, 10)
	parent := Transform[rh]{
		Position: mgl64.Vec3{0, 0, 7},
		Rotation: mgl64.QuatRotate(1.1, mgl64.Vec3{1, 0, 0}),
	}
	got := d.Drive(UpdateParams[rh]{Parent: parent, DeltaTime: 1.0 / 60})
	if got != parent {
		t.Errorf("Drive = %v, want parent %v unchanged", got, parent)
	}
}

func TestMaintainDistanceOnFocalAxis(t *testing.T) {
	d := NewMaintainDistance[rh](mgl64.Vec3{1, 0, 1}, 4, 10)
	parent := Transform[rh]{Position: mgl64.Vec3{1, 5, 1}, Rotation: mgl64.QuatIdent()}
	got := d.Drive(UpdateParams[rh]{Parent: parent, DeltaTime: 1.0 / 60})
	if got != parent {
		t.Errorf("Drive = %v, want parent %v unchanged", got, parent)
	}
	if !finiteVec(got.Position) {
		t.Errorf("non-finite position %v", got.Position)
	}
}

func TestMaintainDistanceZeroNormalUses3D(t *testing.T) {
	d := &MaintainDistance[rh]{MinDistance: 0, MaxDistance: 5}
	parent := Transform[rh]{Position: mgl64.Vec3{0, 6, 8}, Rotation: mgl64.QuatIdent()}
	got := d.Drive(UpdateParams[rh]{Parent: parent, DeltaTime: 1.0 / 60})
	assertNear(t, "3D distance", got.Position.Len(), 5)
	assertVec(t, "position", got.Position, mgl64.Vec3{0, 3, 4}, 1e-9)
}

func TestMaintainDistanceTiltedPlane(t *testing.T) {
	// Constrain distance in the XY plane: Z is free.
	d := &MaintainDistance[rh]{PlaneNormal: mgl64.Vec3{0, 0, 3}, MinDistance: 1, MaxDistance: 2}
	parent := Transform[rh]{Position: mgl64.Vec3{4, 0, 9}, Rotation: mgl64.QuatIdent()}
	got := d.Drive(UpdateParams[rh]{Parent: parent, DeltaTime: 1.0 / 60})
	assertVec(t, "position", got.Position, mgl64.Vec3{2, 0, 9}, 1e-9)
}
