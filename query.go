package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// eface mirrors the runtime layout of an empty interface. fill reads the data
// pointer through it to reach a stored component without allocating.
type eface struct {
	rtype unsafe.Pointer
	data  unsafe.Pointer
}

// queryCore is the shared machinery behind Query and EventQuery: the resolved
// component ids, the cached filter and the precomputed field offsets used to
// populate result structs without per-entity reflection.
type queryCore struct {
	world       *World
	filter      *Filter
	ids         []ComponentID
	optional    []bool
	fieldOffset []uintptr
}

func (c *queryCore) init(w *World, structType reflect.Type, forEvents bool) {
	if structType.Kind() != reflect.Struct {
		panic("query type parameter must be a struct")
	}
	if structType.NumField() == 0 {
		panic("query struct needs at least one component field")
	}

	c.world = w
	c.ids = make([]ComponentID, 0, structType.NumField())
	c.optional = make([]bool, 0, structType.NumField())
	c.fieldOffset = make([]uintptr, 0, structType.NumField())

	var mask Mask
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("query struct fields must be pointer types")
		}
		id := w.registry.register(field.Type.Elem())

		// Embedded fields are always required; named fields may opt out of
		// the filter mask with the `ecs:"optional"` tag.
		isOptional := false
		if !field.Anonymous {
			if tag := field.Tag.Get("ecs"); tag != "" {
				if tag != "optional" {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
				isOptional = true
			}
		}
		if !isOptional {
			mask.Set(id)
		}

		c.ids = append(c.ids, id)
		c.optional = append(c.optional, isOptional)
		c.fieldOffset = append(c.fieldOffset, field.Offset)
	}

	if mask.IsEmpty() {
		panic("query struct needs at least one required component field")
	}
	filter, err := w.GetFilter(mask, forEvents)
	if err != nil {
		panic(err)
	}
	c.filter = filter
}

// fill populates the result struct's pointer fields for an entity that is a
// member of the query's filter. Optional components resolve to nil when not
// attached.
func (c *queryCore) fill(e Entity, resultPtr unsafe.Pointer) {
	ed := &c.world.entities[e]
	for i, id := range c.ids {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + c.fieldOffset[i])
		if c.optional[i] && !ed.mask.Has(id) {
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}
		comp := ed.components[id]
		componentPtr := (*eface)(unsafe.Pointer(&comp)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}
}

// Query iterates entities carrying a specific component combination. The type
// parameter T is a struct whose fields are pointers to component types;
// embedded and named fields both work, and named fields tagged `ecs:"optional"`
// do not constrain the filter and resolve to nil when absent.
//
// A SystemGroup initializes Query fields of registered systems automatically;
// call Init yourself when using one outside a system. Init registers the
// component types and acquires the filter, so queries created before entities
// spawn observe every later mask change.
type Query[T any] struct {
	core queryCore
}

// Init binds the query to a world. Called by SystemGroup during Add.
func (q *Query[T]) Init(w *World) {
	var zero T
	q.core.init(w, reflect.TypeOf(zero), false)
}

// Iter yields each member entity with a populated result struct. Structural
// changes made while iterating are queued and applied at the next flush, so
// membership is stable for the whole iteration.
func (q *Query[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)
		for _, e := range q.core.filter.entities {
			q.core.fill(e, resultPtr)
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values yields just the populated result structs.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)
		for _, e := range q.core.filter.entities {
			q.core.fill(e, resultPtr)
			if !yield(result) {
				return
			}
		}
	}
}

// Get returns a populated result struct for one entity, or nil when the
// entity is dead or does not carry the query's required components.
func (q *Query[T]) Get(e Entity) *T {
	if !q.core.world.Alive(e) {
		return nil
	}
	if !q.core.world.entities[e].mask.Contains(q.core.filter.mask) {
		return nil
	}
	var result T
	q.core.fill(e, unsafe.Pointer(&result))
	return &result
}

// Entities returns the member entities, valid until the next flush.
func (q *Query[T]) Entities() []Entity {
	return q.core.filter.Entities()
}

// Count returns the number of member entities.
func (q *Query[T]) Count() int {
	return q.core.filter.Count()
}

// Filter returns the underlying filter.
func (q *Query[T]) Filter() *Filter {
	return q.core.filter
}

// EventQuery is a Query over a forEvents filter: matching entities are
// one-shot and disappear with the update pass that surfaced them. Iterate it
// inside a run system to consume events published since the previous pass.
type EventQuery[T any] struct {
	core queryCore
}

// Init binds the event query to a world. Called by SystemGroup during Add.
func (q *EventQuery[T]) Init(w *World) {
	var zero T
	q.core.init(w, reflect.TypeOf(zero), true)
}

// Iter yields each pending event entity with a populated result struct.
func (q *EventQuery[T]) Iter() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)
		for _, e := range q.core.filter.entities {
			q.core.fill(e, resultPtr)
			if !yield(e, result) {
				return
			}
		}
	}
}

// Values yields just the populated result structs.
func (q *EventQuery[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)
		for _, e := range q.core.filter.entities {
			q.core.fill(e, resultPtr)
			if !yield(result) {
				return
			}
		}
	}
}

// Entities returns the pending event entities, valid until the next flush.
func (q *EventQuery[T]) Entities() []Entity {
	return q.core.filter.Entities()
}

// Count returns the number of pending event entities.
func (q *EventQuery[T]) Count() int {
	return q.core.filter.Count()
}

// Filter returns the underlying filter.
func (q *EventQuery[T]) Filter() *Filter {
	return q.core.filter
}
