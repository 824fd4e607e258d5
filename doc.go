// Package camrig computes a camera transform once per frame by running a
// fixed, ordered pipeline of small stages called drivers.
//
// Vector and quaternion math comes from [mgl64].
//
// # Quick start
//
// Build a rig from drivers, push host state into it each frame, then call
// [Rig.Update] with the frame time and render from [Rig.FinalTransform]:
//
//	rig := camrig.NewBuilder[camrig.RightHanded]().
//		With(camrig.NewPosition[camrig.RightHanded](mgl64.Vec3{4, 3, 8})).
//		With(camrig.NewSmoothPosition[camrig.RightHanded](1.25).Predictive(true)).
//		With(camrig.NewSmoothPosition[camrig.RightHanded](2.5)).
//		With(camrig.NewMaintainDistance[camrig.RightHanded](player, 4, 10)).
//		With(camrig.NewLookAt[camrig.RightHanded](player).TrackingSmoothness(1.25)).
//		Build()
//
//	// every frame:
//	camrig.DriverMut[*camrig.LookAt[camrig.RightHanded]](rig).Target = player
//	xf := rig.Update(dt)
//
// # Drivers
//
// Every driver implements [Driver]. A driver receives the previous driver's
// output and returns a new [Transform]; the first driver receives the
// identity. Order matters: a [Smooth] placed before a [MaintainDistance]
// constrains smoothed motion, placed after it smooths the constrained result.
//
// State holders: [Position], [Rotation], [Glide]. Orientation: [LookAt],
// [YawPitch]. Constraints: [MaintainDistance], [LockPosition], [Bounds].
// Offsets and filters: [Arm], [Smooth].
//
// A zero frame time is always a no-op: drivers repeat their previous output.
//
// # Handedness
//
// [Transform], [Rig] and every driver carry a handedness type parameter,
// [RightHanded] (camera looks down -Z) or [LeftHanded] (camera looks down
// +Z). Mixing the two is a compile error.
//
// # Finding drivers
//
// [DriverMut] returns the first driver of a given type so host code can write
// its fields between updates. It panics if the rig has none. [TryDriver] is
// the non-panicking form.
//
// # Nesting
//
// A [Rig] is itself a [Driver]. Wrap an inner rig in your own type to reuse a
// sub-pipeline as one stage, and give the wrapper methods that reach into the
// inner rig; [MovableLookAt] is an example. The outer rig's lookup does not
// see inside the wrapper.
//
// [mgl64]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64
package camrig
