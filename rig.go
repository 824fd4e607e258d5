package camrig

import (
	"fmt"
	"log/slog"
)

// UpdateParams is what a driver receives each frame.
type UpdateParams[H Handedness] struct {
	// Parent is the output of the previous driver in the rig, or the
	// identity transform for the first driver.
	Parent Transform[H]
	// DeltaTime is the elapsed frame time in seconds. It may be zero, in
	// which case a driver must repeat its previous output.
	DeltaTime float64
}

// Driver is a single stage of a camera rig. Drive consumes the previous
// stage's transform and returns a new one. Drivers are used through pointers
// so the rig's typed lookup hands out mutable references.
type Driver[H Handedness] interface {
	Drive(p UpdateParams[H]) Transform[H]
}

// Rig is an ordered pipeline of drivers producing one camera transform per
// frame. The driver order is fixed when the rig is built.
//
// A Rig is not safe for concurrent use. Update must not run concurrently with
// itself or with reads of FinalTransform; separate rigs share no state.
type Rig[H Handedness] struct {
	// FinalTransform is the result of the most recent Update.
	FinalTransform Transform[H]

	drivers []Driver[H]
}

// Builder accumulates drivers in call order.
type Builder[H Handedness] struct {
	drivers []Driver[H]
}

// NewBuilder starts a rig description.
//
//	rig := camrig.NewBuilder[camrig.RightHanded]().
//		With(camrig.NewPosition[camrig.RightHanded](mgl64.Vec3{4, 3, 8})).
//		With(camrig.NewSmoothPosition[camrig.RightHanded](1.25)).
//		With(camrig.NewLookAt[camrig.RightHanded](mgl64.Vec3{0, 1, 0})).
//		Build()
func NewBuilder[H Handedness]() *Builder[H] {
	return &Builder[H]{}
}

// With appends a driver. Drivers run in the order they were added.
func (b *Builder[H]) With(d Driver[H]) *Builder[H] {
	b.drivers = append(b.drivers, d)
	return b
}

// Build finalizes the rig and runs one zero-time update so FinalTransform is
// valid before the first frame. The builder may be discarded afterwards.
func (b *Builder[H]) Build() *Rig[H] {
	drivers := make([]Driver[H], len(b.drivers))
	copy(drivers, b.drivers)

	r := &Rig[H]{
		FinalTransform: Identity[H](),
		drivers:        drivers,
	}
	r.Update(0)

	Logger().Debug("camrig: rig built", slog.Int("drivers", len(drivers)))
	return r
}

// Update advances every driver by dt seconds, caches the result in
// FinalTransform and returns it. Negative or non-finite dt counts as zero.
func (r *Rig[H]) Update(dt float64) Transform[H] {
	dt = sanitizeDelta(dt)

	t := Identity[H]()
	for _, d := range r.drivers {
		t = d.Drive(UpdateParams[H]{Parent: t, DeltaTime: dt})
	}
	r.FinalTransform = t
	return t
}

// Drive lets a rig act as a single stage inside another rig. The inner rig
// starts from identity like any top-level rig; the outer parent is ignored.
func (r *Rig[H]) Drive(p UpdateParams[H]) Transform[H] {
	return r.Update(p.DeltaTime)
}

// Len returns the number of drivers in the rig.
func (r *Rig[H]) Len() int {
	return len(r.drivers)
}

// Drivers returns the rig's drivers in update order. The returned slice MUST
// NOT be mutated.
func (r *Rig[H]) Drivers() []Driver[H] {
	return r.drivers
}

// DriverMut returns the first driver in r whose dynamic type is D. Exactly one
// such driver is expected; if none exists DriverMut panics, since a rig that
// lacks a driver its owner relies on is a programming error.
//
// Drivers nested inside a composite driver are not searched.
//
//	camrig.DriverMut[*camrig.LookAt[camrig.RightHanded]](rig).Target = p
func DriverMut[D Driver[H], H Handedness](r *Rig[H]) D {
	if d, ok := TryDriver[D](r); ok {
		return d
	}
	var zero D
	Logger().Error("camrig: driver lookup failed",
		slog.String("type", fmt.Sprintf("%T", zero)),
		slog.Int("drivers", len(r.drivers)))
	panic(fmt.Sprintf("camrig: no driver of type %T in rig", zero))
}

// TryDriver is DriverMut without the panic: ok is false when r holds no
// driver of type D.
func TryDriver[D Driver[H], H Handedness](r *Rig[H]) (d D, ok bool) {
	for _, drv := range r.drivers {
		if d, ok = drv.(D); ok {
			return d, true
		}
	}
	return d, false
}
