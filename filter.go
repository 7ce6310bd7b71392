package ecs

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Filter is a cached, incrementally maintained list of entities whose masks
// contain the filter's required mask. Filters are identified by
// (mask, forEvents) and live for the world's lifetime, so systems can cache
// the pointer. Membership only changes during flush; between flushes the
// entity list is stable and safe to iterate.
//
// A forEvents filter additionally marks its members as one-shot: the
// end-of-update sweep queues every member for removal, so an event entity is
// visible for exactly one update pass.
type Filter struct {
	mask      Mask
	forEvents bool

	entities []Entity
	indices  *intmap.Map[Entity, int32]
}

func newFilter(mask Mask, forEvents bool) *Filter {
	return &Filter{
		mask:      mask,
		forEvents: forEvents,
		entities:  make([]Entity, 0, 64),
		indices:   intmap.New[Entity, int32](64),
	}
}

// GetFilter returns the filter registered for (mask, forEvents), creating an
// empty one on first request. A new filter does not scan existing entities:
// acquire filters before spawning, the way injected queries do. An empty mask
// is rejected.
func (w *World) GetFilter(mask Mask, forEvents bool) (*Filter, error) {
	if mask.IsEmpty() {
		return nil, fmt.Errorf("%w: empty filter mask", ErrInvalidArgument)
	}
	for _, f := range w.filters {
		if f.forEvents == forEvents && f.mask.Equals(mask) {
			return f, nil
		}
	}
	f := newFilter(mask, forEvents)
	w.filters = append(w.filters, f)
	return f, nil
}

// updateFilters applies one entity's mask transition to every registered
// filter. Compatibility against the filter mask decides the move: gained
// compatibility appends, lost compatibility removes, unchanged compatibility
// leaves membership alone even when unrelated bits moved.
func (w *World) updateFilters(e Entity, old, updated Mask) {
	for _, f := range w.filters {
		was := old.Contains(f.mask)
		is := updated.Contains(f.mask)
		switch {
		case is && !was:
			f.add(e)
		case was && !is:
			f.remove(e)
		}
	}
}

func (f *Filter) add(e Entity) {
	f.indices.Put(e, int32(len(f.entities)))
	f.entities = append(f.entities, e)
}

// remove swaps the last member into the vacated position. Iteration order is
// deterministic but not insertion stable across removals.
func (f *Filter) remove(e Entity) {
	idx, ok := f.indices.Get(e)
	if !ok {
		return
	}
	last := len(f.entities) - 1
	moved := f.entities[last]
	f.entities[idx] = moved
	f.entities = f.entities[:last]
	f.indices.Del(e)
	if moved != e {
		f.indices.Put(moved, idx)
	}
}

// Entities returns the filter's current members. The slice is owned by the
// filter and valid until the next flush; callers must not mutate or retain it.
func (f *Filter) Entities() []Entity {
	return f.entities
}

// Count returns the number of entities currently in the filter.
func (f *Filter) Count() int {
	return len(f.entities)
}

// Contains reports whether the entity is currently a member.
func (f *Filter) Contains(e Entity) bool {
	_, ok := f.indices.Get(e)
	return ok
}

// Mask returns the filter's required component mask.
func (f *Filter) Mask() Mask {
	return f.mask
}

// ForEvents reports whether the filter's members are swept after each update
// pass.
func (f *Filter) ForEvents() bool {
	return f.forEvents
}

// sweepEvents queues removal of every entity currently held by a forEvents
// filter. SystemGroup.Run calls this before its final flush.
func (w *World) sweepEvents() {
	for _, f := range w.filters {
		if !f.forEvents {
			continue
		}
		for _, e := range f.entities {
			w.queue = append(w.queue, delayedUpdate{op: opRemoveEntity, entity: e})
		}
	}
}
