package store

import (
	"iter"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Query selects entities holding every included kind and none of the excluded ones.
// A Query is immutable once built and safe to reuse across ticks.
type Query struct {
	include []donburi.IComponentType
	exclude []donburi.IComponentType
	q       *donburi.Query
}

// NewQuery selects entities that hold all of kinds.
func NewQuery(kinds ...donburi.IComponentType) *Query {
	return build(kinds, nil)
}

// Without returns a copy of q that also rejects entities holding any of kinds.
func (q *Query) Without(kinds ...donburi.IComponentType) *Query {
	return build(q.include, append(slices.Clone(q.exclude), kinds...))
}

func build(include, exclude []donburi.IComponentType) *Query {
	filters := []filter.LayoutFilter{filter.Contains(include...)}
	for _, k := range exclude {
		filters = append(filters, filter.Not(filter.Contains(k)))
	}
	return &Query{
		include: slices.Clone(include),
		exclude: exclude,
		q:       donburi.NewQuery(filter.And(filters...)),
	}
}

// Iter yields matching entities in creation order. Matches are collected when
// iteration starts; records may be mutated while iterating but entities must not
// be created or removed until it ends.
func (q *Query) Iter(w donburi.World) iter.Seq[*donburi.Entry] {
	return func(yield func(*donburi.Entry) bool) {
		for _, e := range q.collect(w) {
			if !yield(e) {
				return
			}
		}
	}
}

// Each calls fn for every match in creation order.
func (q *Query) Each(w donburi.World, fn func(*donburi.Entry)) {
	for e := range q.Iter(w) {
		fn(e)
	}
}

// First returns the earliest created match.
func (q *Query) First(w donburi.World) (*donburi.Entry, bool) {
	entries := q.collect(w)
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0], true
}

// Count returns the number of matches.
func (q *Query) Count(w donburi.World) int {
	return q.q.Count(w)
}

// donburi walks archetype by archetype; ids are handed out sequentially and this
// game never removes entities, so id order is creation order.
func (q *Query) collect(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	q.q.Each(w, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		ai, bi := a.Entity().Id(), b.Entity().Id()
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	})
	return entries
}
