package ecs

import "reflect"

// Add attaches a component of type T to the entity and returns it. The
// instance is stored immediately so the caller can populate fields right away,
// but the mask bit, filter membership and attach notification are deferred to
// the next flush. Calling Add again for the same type before that flush
// returns the same instance without queueing anything.
func Add[T any](w *World, e Entity) (*T, error) {
	ed, err := w.slot(e)
	if err != nil {
		return nil, err
	}
	id := w.registry.register(reflect.TypeFor[T]())
	if int(id) < len(ed.components) {
		if c := ed.components[id]; c != nil {
			return c.(*T), nil
		}
	}
	pool := w.pool(id)
	comp := pool.get().(*T)
	if n := int(id) + 1; n > len(ed.components) {
		ed.components = append(ed.components, make([]any, n-len(ed.components))...)
	}
	ed.components[id] = comp
	w.queue = append(w.queue, delayedUpdate{op: opAddComponent, entity: e, typeId: id})
	return comp, nil
}

// Remove queues detachment of the entity's T component. Removing a type the
// world has never seen, or one the entity does not carry, is a no-op.
func Remove[T any](w *World, e Entity) error {
	if _, err := w.slot(e); err != nil {
		return err
	}
	id, ok := w.registry.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	w.queue = append(w.queue, delayedUpdate{op: opRemoveComponent, entity: e, typeId: id})
	return nil
}

// Get returns the entity's T component, or nil when it carries none. A
// component stored by Add is visible here immediately, before the flush that
// makes it visible to filters.
func Get[T any](w *World, e Entity) (*T, error) {
	ed, err := w.slot(e)
	if err != nil {
		return nil, err
	}
	id, ok := w.registry.lookup(reflect.TypeFor[T]())
	if !ok || int(id) >= len(ed.components) {
		return nil, nil
	}
	c := ed.components[id]
	if c == nil {
		return nil, nil
	}
	return c.(*T), nil
}

// CreateEvent creates a fresh entity carrying a single component of type T.
// Entities reached through a forEvents filter live for exactly one update
// pass; the end-of-pass sweep removes them.
func CreateEvent[T any](w *World) *T {
	comp, _ := Add[T](w, w.CreateEntity())
	return comp
}

// TypeID returns the world's id for component type T, registering it on first
// use. Use it to build filter masks.
func TypeID[T any](w *World) ComponentID {
	return w.registry.register(reflect.TypeFor[T]())
}

// pool returns the lazily created pool for the given component id.
func (w *World) pool(id ComponentID) *componentPool {
	for int(id) >= len(w.pools) {
		w.pools = append(w.pools, nil)
	}
	if w.pools[id] == nil {
		w.pools[id] = newComponentPool(w.registry.typeOf(id))
	}
	return w.pools[id]
}
