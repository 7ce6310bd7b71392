package ecs

// Entity is a dense index into the world's entity store. Ids are recycled:
// after a removed entity's flush its id is handed out again by CreateEntity,
// most recently freed first.
type Entity int32

// entityData is one slot of the entity store.
//
// components is indexed by ComponentID and grown lazily up to the highest id
// this entity ever touched. A slot instance may be present before the mask bit
// is set: AddComponent stores eagerly and flips the bit at flush.
type entityData struct {
	mask       Mask
	components []any
	reserved   bool
}

// slot returns a live entity's record, or an ErrInvalidEntity error when the
// id is out of range or the slot is reserved on the free list.
func (w *World) slot(e Entity) (*entityData, error) {
	if e < 0 || int(e) >= len(w.entities) {
		return nil, invalidEntityError(e, "out of range")
	}
	ed := &w.entities[e]
	if ed.reserved {
		return nil, invalidEntityError(e, "not alive")
	}
	return ed, nil
}

// Alive reports whether the entity id addresses a live (non-reserved) slot.
// Entities with a pending RemoveEntity count as alive until the next flush.
func (w *World) Alive(e Entity) bool {
	return e >= 0 && int(e) < len(w.entities) && !w.entities[e].reserved
}
