package camrig

import "github.com/go-gl/mathgl/mgl64"

// LockPosition pins selected position axes to fixed values while the parent
// rotation and any unlocked axes pass through. Locking all three axes freezes
// the camera at its last explicitly set position.
type LockPosition[H Handedness] struct {
	locked [3]bool
	value  mgl64.Vec3
}

// NewLockPosition returns a LockPosition with no axes locked.
func NewLockPosition[H Handedness]() *LockPosition[H] {
	return &LockPosition[H]{}
}

// NewLockPositionAt returns a LockPosition with all axes locked at p.
func NewLockPositionAt[H Handedness](p mgl64.Vec3) *LockPosition[H] {
	d := &LockPosition[H]{}
	d.SetPosition(p)
	return d
}

// SetPosition locks all three axes at p.
func (d *LockPosition[H]) SetPosition(p mgl64.Vec3) {
	d.locked = [3]bool{true, true, true}
	d.value = p
}

// LockX locks the X axis at x.
func (d *LockPosition[H]) LockX(x float64) *LockPosition[H] { return d.lock(0, x) }

// LockY locks the Y axis at y.
func (d *LockPosition[H]) LockY(y float64) *LockPosition[H] { return d.lock(1, y) }

// LockZ locks the Z axis at z.
func (d *LockPosition[H]) LockZ(z float64) *LockPosition[H] { return d.lock(2, z) }

// Unlock releases every axis.
func (d *LockPosition[H]) Unlock() {
	d.locked = [3]bool{}
}

// Locked reports whether the given axis (0=X, 1=Y, 2=Z) is locked.
func (d *LockPosition[H]) Locked(axis int) bool {
	return d.locked[axis]
}

func (d *LockPosition[H]) lock(axis int, v float64) *LockPosition[H] {
	d.locked[axis] = true
	d.value[axis] = v
	return d
}

func (d *LockPosition[H]) Drive(p UpdateParams[H]) Transform[H] {
	pos := p.Parent.Position
	for i, l := range d.locked {
		if l {
			pos[i] = d.value[i]
		}
	}
	return Transform[H]{Position: pos, Rotation: p.Parent.Rotation}
}
