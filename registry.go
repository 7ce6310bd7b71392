package ecs

import (
	"fmt"
	"reflect"
)

// typeRegistry assigns stable component ids within one World. The first use
// of a type claims the next sequential id; the table never shrinks. Keeping
// the table per world lets independent worlds coexist in one process without
// sharing id space.
type typeRegistry struct {
	ids   map[reflect.Type]ComponentID
	types []reflect.Type
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{ids: make(map[reflect.Type]ComponentID)}
}

// lookup returns the id for a previously registered type.
func (r *typeRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// register returns the type's id, assigning the next one on first use.
// Components must be value types: pointers, maps, channels and functions are
// rejected because the pool owns and zero-resets instances. Exceeding
// MaxComponentTypes panics; the mask layout cannot grow.
func (r *typeRegistry) register(t reflect.Type) ComponentID {
	if id, ok := r.ids[t]; ok {
		return id
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
		panic("ecs: component types cannot be pointers, maps, channels, or functions: " + t.String())
	}
	if len(r.types) >= MaxComponentTypes {
		panic(fmt.Sprintf("ecs: too many component types (max %d)", MaxComponentTypes))
	}
	id := ComponentID(len(r.types))
	r.ids[t] = id
	r.types = append(r.types, t)
	return id
}

// typeOf returns the reflect.Type registered under id, or nil when the id was
// never assigned.
func (r *typeRegistry) typeOf(id ComponentID) reflect.Type {
	if id < 0 || int(id) >= len(r.types) {
		return nil
	}
	return r.types[id]
}

func (r *typeRegistry) count() int {
	return len(r.types)
}
