package ebitenhost

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/camrig"
)

// LineWidth is the stroke width used by the wireframe helpers.
var LineWidth float32 = 1

// DrawLine3D draws the world-space segment a-b as seen by cam. The part of
// the segment behind the near plane is clipped away.
func DrawLine3D[H camrig.Handedness](dst *ebiten.Image, cam *camrig.Camera[H], a, b mgl64.Vec3, clr color.Color) {
	x0, y0, x1, y1, ok := projectSegment(cam.ViewProjection(), cam.Viewport, a, b)
	if !ok {
		return
	}
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), LineWidth, clr, true)
}

// DrawGrid draws a square grid on the horizontal plane through center with
// 2*half cells per side.
func DrawGrid[H camrig.Handedness](dst *ebiten.Image, cam *camrig.Camera[H], center mgl64.Vec3, half int, spacing float64, clr color.Color) {
	extent := float64(half) * spacing
	for i := -half; i <= half; i++ {
		o := float64(i) * spacing
		DrawLine3D(dst, cam,
			center.Add(mgl64.Vec3{o, 0, -extent}),
			center.Add(mgl64.Vec3{o, 0, extent}), clr)
		DrawLine3D(dst, cam,
			center.Add(mgl64.Vec3{-extent, 0, o}),
			center.Add(mgl64.Vec3{extent, 0, o}), clr)
	}
}

// DrawBox draws the edges of an axis-aligned box.
func DrawBox[H camrig.Handedness](dst *ebiten.Image, cam *camrig.Camera[H], center, size mgl64.Vec3, clr color.Color) {
	for _, e := range boxEdges(center, size) {
		DrawLine3D(dst, cam, e[0], e[1], clr)
	}
}

// DrawMarker draws a small three-axis cross at p.
func DrawMarker[H camrig.Handedness](dst *ebiten.Image, cam *camrig.Camera[H], p mgl64.Vec3, size float64, clr color.Color) {
	h := size / 2
	DrawLine3D(dst, cam, p.Sub(mgl64.Vec3{h, 0, 0}), p.Add(mgl64.Vec3{h, 0, 0}), clr)
	DrawLine3D(dst, cam, p.Sub(mgl64.Vec3{0, h, 0}), p.Add(mgl64.Vec3{0, h, 0}), clr)
	DrawLine3D(dst, cam, p.Sub(mgl64.Vec3{0, 0, h}), p.Add(mgl64.Vec3{0, 0, h}), clr)
}

// boxEdges returns the 12 edges of an axis-aligned box.
func boxEdges(center, size mgl64.Vec3) [12][2]mgl64.Vec3 {
	h := size.Mul(0.5)
	var c [8]mgl64.Vec3
	for i := range c {
		s := mgl64.Vec3{-1, -1, -1}
		if i&1 != 0 {
			s[0] = 1
		}
		if i&2 != 0 {
			s[1] = 1
		}
		if i&4 != 0 {
			s[2] = 1
		}
		c[i] = center.Add(mgl64.Vec3{s[0] * h[0], s[1] * h[1], s[2] * h[2]})
	}
	return [12][2]mgl64.Vec3{
		{c[0], c[1]}, {c[2], c[3]}, {c[4], c[5]}, {c[6], c[7]},
		{c[0], c[2]}, {c[1], c[3]}, {c[4], c[6]}, {c[5], c[7]},
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}

// projectSegment maps a-b to viewport pixels. Points are clipped against the
// near plane (clip z + w >= 0); ok is false when nothing is in front of it.
func projectSegment(viewProj mgl64.Mat4, vp camrig.Rect, a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	ca := viewProj.Mul4x1(a.Vec4(1))
	cb := viewProj.Mul4x1(b.Vec4(1))
	da := ca.Z() + ca.W()
	db := cb.Z() + cb.W()

	switch {
	case da < 0 && db < 0:
		return 0, 0, 0, 0, false
	case da < 0:
		ca = ca.Add(cb.Sub(ca).Mul(da / (da - db)))
	case db < 0:
		cb = cb.Add(ca.Sub(cb).Mul(db / (db - da)))
	}
	if ca.W() <= 1e-12 || cb.W() <= 1e-12 {
		return 0, 0, 0, 0, false
	}
	x0, y0 = clipToScreen(vp, ca)
	x1, y1 = clipToScreen(vp, cb)
	return x0, y0, x1, y1, true
}

func clipToScreen(vp camrig.Rect, c mgl64.Vec4) (float64, float64) {
	nx, ny := c.X()/c.W(), c.Y()/c.W()
	return vp.X + (nx+1)/2*vp.Width, vp.Y + (1-ny)/2*vp.Height
}
