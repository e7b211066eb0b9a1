// Package store is the entity store: identities, typed records attached to them, and
// creation-ordered queries over record combinations. Storage is a donburi world.
package store

import (
	"github.com/yohamta/donburi"
)

// entity is carried by every stored entity. donburi cannot hold an entity with
// no components, so this keeps a bare identity alive.
var entity = donburi.NewTag()

// Create adds an entity carrying zero-valued records of the given kinds. With
// no kinds the entity is a bare identity.
func Create(w donburi.World, kinds ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(kinds)+1)
	all = append(all, entity)
	all = append(all, kinds...)
	return w.Entry(w.Create(all...))
}

// Attach stores one record of kind on e, replacing any record already there.
// Without a value the record is the zero value of T.
func Attach[T any](e *donburi.Entry, kind *donburi.ComponentType[T], value ...T) {
	if !e.HasComponent(kind) {
		e.AddComponent(kind)
	}
	var v T
	if len(value) > 0 {
		v = value[0]
	}
	kind.SetValue(e, v)
}

// Get returns a mutable reference to the kind record of e.
func Get[T any](e *donburi.Entry, kind *donburi.ComponentType[T]) (*T, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(kind) {
		return nil, false
	}
	return kind.Get(e), true
}

// Has reports whether e carries every kind.
func Has(e *donburi.Entry, kinds ...donburi.IComponentType) bool {
	for _, k := range kinds {
		if !e.HasComponent(k) {
			return false
		}
	}
	return true
}

// Detach removes the kind record from e. Detaching an absent kind is a no-op.
// The entity stays alive after its last record is gone.
func Detach(e *donburi.Entry, kind donburi.IComponentType) {
	if kind.Id() == entity.Id() || !e.HasComponent(kind) {
		return
	}
	if !e.HasComponent(entity) {
		e.AddComponent(entity)
	}
	e.RemoveComponent(kind)
}
