package camrig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lens describes a perspective projection.
type Lens struct {
	// FovY is the vertical field of view in radians.
	FovY float64
	// Near and Far are the clip plane distances.
	Near, Far float64
}

// DefaultLens is a 60 degree lens with clip planes at 0.1 and 1000.
var DefaultLens = Lens{FovY: math.Pi / 3, Near: 0.1, Far: 1000}

// Camera projects world space into a screen viewport as seen from a rig's
// transform. The view-projection matrix is cached and recomputed only when
// the transform, lens or viewport changes; after writing Lens or Viewport
// directly, call MarkDirty.
type Camera[H Handedness] struct {
	Lens     Lens
	Viewport Rect

	transform   Transform[H]
	viewProj    mgl64.Mat4
	invViewProj mgl64.Mat4
	dirty       bool
}

// NewCamera creates a Camera with DefaultLens, the given viewport and an
// identity transform.
func NewCamera[H Handedness](viewport Rect) *Camera[H] {
	return &Camera[H]{
		Lens:      DefaultLens,
		Viewport:  viewport,
		transform: Identity[H](),
		dirty:     true,
	}
}

// SetTransform places the camera.
func (c *Camera[H]) SetTransform(t Transform[H]) {
	if t != c.transform {
		c.transform = t
		c.dirty = true
	}
}

// Follow places the camera at the rig's last computed transform. Call it
// once per frame after Rig.Update.
func (c *Camera[H]) Follow(r *Rig[H]) {
	c.SetTransform(r.FinalTransform)
}

// Transform returns the camera placement.
func (c *Camera[H]) Transform() Transform[H] {
	return c.transform
}

// MarkDirty forces a recomputation of the view-projection matrix.
func (c *Camera[H]) MarkDirty() {
	c.dirty = true
}

// ViewProjection returns projection * view for the current placement.
func (c *Camera[H]) ViewProjection() mgl64.Mat4 {
	c.computeViewProjection()
	return c.viewProj
}

// computeViewProjection recomputes the cached matrices if dirty.
//
//	viewProj = Perspective * Scale(1, 1, -forwardZSign) * View
//
// The scale turns a left-handed view space into the right-handed one
// Perspective expects; for right-handed rigs it is the identity.
func (c *Camera[H]) computeViewProjection() {
	if !c.dirty {
		return
	}
	c.dirty = false

	var h H
	aspect := 1.0
	if c.Viewport.Height > 0 {
		aspect = c.Viewport.Width / c.Viewport.Height
	}
	proj := mgl64.Perspective(c.Lens.FovY, aspect, c.Lens.Near, c.Lens.Far)
	flip := mgl64.Scale3D(1, 1, -h.ForwardZSign())

	c.viewProj = proj.Mul4(flip).Mul4(c.transform.ViewMatrix())
	c.invViewProj = c.viewProj.Inv()
}

// WorldToScreen converts a world point to viewport pixel coordinates. ok is
// false when the point is behind the camera; the coordinates are then
// meaningless.
func (c *Camera[H]) WorldToScreen(p mgl64.Vec3) (sx, sy float64, ok bool) {
	c.computeViewProjection()
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-12 {
		return 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	vp := c.Viewport
	sx = vp.X + (nx+1)/2*vp.Width
	sy = vp.Y + (1-ny)/2*vp.Height
	return sx, sy, true
}

// ScreenToWorld returns the world-space ray through the given viewport
// pixel: its origin on the near plane and its unit direction.
func (c *Camera[H]) ScreenToWorld(sx, sy float64) (origin, dir mgl64.Vec3) {
	c.computeViewProjection()
	vp := c.Viewport
	nx := (sx-vp.X)/vp.Width*2 - 1
	ny := 1 - (sy-vp.Y)/vp.Height*2

	near := unproject(c.invViewProj, nx, ny, -1)
	far := unproject(c.invViewProj, nx, ny, 1)
	dir, ok := normalized(far.Sub(near))
	if !ok {
		dir = c.transform.Forward()
	}
	return near, dir
}

// Visible reports whether p projects inside the viewport and in front of
// the camera.
func (c *Camera[H]) Visible(p mgl64.Vec3) bool {
	sx, sy, ok := c.WorldToScreen(p)
	return ok && c.Viewport.Contains(sx, sy)
}

func unproject(inv mgl64.Mat4, nx, ny, nz float64) mgl64.Vec3 {
	v := inv.Mul4x1(mgl64.Vec4{nx, ny, nz, 1})
	return v.Vec3().Mul(1 / v.W())
}
