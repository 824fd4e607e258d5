// Package ecs runs camrig rigs inside a [Donburi] world.
//
// Attach a rig to an entity with [Rigs.Spawn] or [Rigs.Attach], call
// [Rigs.Update] once per tick and subscribe to [Rigs.Updated] to receive the
// new camera transform of every entity:
//
//	rigs := ecs.NewRigs[camrig.RightHanded]()
//	player := rigs.Spawn(world, rig)
//	rigs.Updated.Subscribe(world, func(w donburi.World, e ecs.RigUpdated[camrig.RightHanded]) {
//		camera.SetTransform(e.Transform)
//	})
//
//	// every tick:
//	rigs.Update(world, dt)
//	rigs.Updated.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
