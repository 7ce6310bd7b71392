package ecs

// delayedOp enumerates the structural mutations that go through the queue.
type delayedOp uint8

const (
	opRemoveEntity delayedOp = iota
	opAddComponent
	opRemoveComponent
)

// delayedUpdate is one queued structural mutation. typeId is meaningful for
// the component ops only.
type delayedUpdate struct {
	op     delayedOp
	entity Entity
	typeId ComponentID
}

// Flush applies every queued structural mutation in FIFO order: mask flips,
// attach/detach notifications, pool recycling and incremental filter updates
// all happen here. Records appended while a pass runs (listeners may queue
// further mutations) are consumed in a follow-up pass before Flush returns.
// A Flush call from inside a listener callback is a no-op; the running flush
// picks up whatever the listener queued.
//
// SystemGroup flushes after every system invocation; call Flush directly when
// driving a World without a group.
func (w *World) Flush() {
	if w.flushing {
		return
	}
	w.flushing = true
	defer func() { w.flushing = false }()

	for len(w.queue) > 0 {
		n := len(w.queue)
		for i := 0; i < n; i++ {
			w.apply(w.queue[i])
		}
		w.queue = append(w.queue[:0], w.queue[n:]...)
	}
}

// apply executes one record. Listener callbacks may create entities, which can
// relocate the entity store; entity slots are therefore never held across a
// notify call.
func (w *World) apply(u delayedUpdate) {
	ed := &w.entities[u.entity]
	if ed.reserved {
		// Destroyed earlier in this flush; drop the record.
		return
	}
	switch u.op {
	case opRemoveEntity:
		w.despawn(u.entity)
	case opAddComponent:
		if ed.mask.Has(u.typeId) {
			return
		}
		if int(u.typeId) >= len(ed.components) || ed.components[u.typeId] == nil {
			// Add stores the instance before queueing, so a nil slot means a
			// despawn earlier in this flush recycled it. The record is stale
			// even when a listener already handed the id out again.
			return
		}
		old := ed.mask
		ed.mask.Set(u.typeId)
		newMask := ed.mask
		comp := ed.components[u.typeId]
		w.notifyAttach(u.entity, comp)
		w.updateFilters(u.entity, old, newMask)
	case opRemoveComponent:
		if !ed.mask.Has(u.typeId) {
			return
		}
		w.detach(u.entity, u.typeId)
	}
}

// detach clears one attached component: mask bit off and slot emptied first,
// then the detach broadcast with the still-live value, then pool recycling and
// the filter update.
func (w *World) detach(e Entity, id ComponentID) {
	ed := &w.entities[e]
	old := ed.mask
	ed.mask.Clear(id)
	newMask := ed.mask
	comp := ed.components[id]
	ed.components[id] = nil
	w.notifyDetach(e, comp)
	w.pools[id].recycle(comp)
	w.updateFilters(e, old, newMask)
}

// despawn detaches every live component one bit at a time, recycles instances
// that were stored but never attached, then reserves the slot and frees the id.
func (w *World) despawn(e Entity) {
	snapshot := w.entities[e].mask
	for id := range snapshot.Bits() {
		w.detach(e, id)
	}
	ed := &w.entities[e]
	for id, comp := range ed.components {
		if comp != nil {
			// Pending add that never flushed.
			ed.components[id] = nil
			w.pools[id].recycle(comp)
		}
	}
	ed.reserved = true
	w.freeIds = append(w.freeIds, e)
}
