package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/camrig"
)

// RigData is the component value stored on an entity.
type RigData[H camrig.Handedness] struct {
	Rig *camrig.Rig[H]
	// Paused rigs are skipped by Update and keep their last transform.
	Paused bool
}

// RigUpdated is published for every rig advanced by Update.
type RigUpdated[H camrig.Handedness] struct {
	Entity    donburi.Entity
	Transform camrig.Transform[H]
}

// Rigs binds rigs of one handedness to donburi worlds. One Rigs value can
// serve any number of worlds.
type Rigs[H camrig.Handedness] struct {
	Component *donburi.ComponentType[RigData[H]]
	Updated   *events.EventType[RigUpdated[H]]

	query *donburi.Query
}

// NewRigs creates the component and event types for handedness H.
func NewRigs[H camrig.Handedness]() *Rigs[H] {
	c := donburi.NewComponentType[RigData[H]]()
	return &Rigs[H]{
		Component: c,
		Updated:   events.NewEventType[RigUpdated[H]](),
		query:     donburi.NewQuery(filter.Contains(c)),
	}
}

// Spawn creates an entity carrying rig.
func (r *Rigs[H]) Spawn(w donburi.World, rig *camrig.Rig[H]) donburi.Entity {
	e := w.Create(r.Component)
	r.Component.SetValue(w.Entry(e), RigData[H]{Rig: rig})
	return e
}

// Attach adds rig to an existing entry, replacing any rig it already holds.
func (r *Rigs[H]) Attach(entry *donburi.Entry, rig *camrig.Rig[H]) {
	if !entry.HasComponent(r.Component) {
		entry.AddComponent(r.Component)
	}
	r.Component.SetValue(entry, RigData[H]{Rig: rig})
}

// Get returns the rig on entry, or nil if it has none.
func (r *Rigs[H]) Get(entry *donburi.Entry) *camrig.Rig[H] {
	if !entry.HasComponent(r.Component) {
		return nil
	}
	return r.Component.Get(entry).Rig
}

// SetPaused pauses or resumes the rig on entry.
func (r *Rigs[H]) SetPaused(entry *donburi.Entry, paused bool) {
	if entry.HasComponent(r.Component) {
		r.Component.Get(entry).Paused = paused
	}
}

// Count returns the number of entities carrying a rig.
func (r *Rigs[H]) Count(w donburi.World) int {
	return r.query.Count(w)
}

// Update advances every unpaused rig in w by dt and queues a RigUpdated
// event for each. Events are delivered by Updated.ProcessEvents.
func (r *Rigs[H]) Update(w donburi.World, dt float64) {
	r.query.Each(w, func(entry *donburi.Entry) {
		data := r.Component.Get(entry)
		if data.Paused || data.Rig == nil {
			return
		}
		xf := data.Rig.Update(dt)
		r.Updated.Publish(w, RigUpdated[H]{Entity: entry.Entity(), Transform: xf})
	})
}
