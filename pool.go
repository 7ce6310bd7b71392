package ecs

import "reflect"

// componentPool recycles instances of one component type. Detached components
// are reset to their zero value and kept on a LIFO free list instead of being
// handed to the garbage collector.
type componentPool struct {
	typ  reflect.Type
	free []any
}

func newComponentPool(typ reflect.Type) *componentPool {
	return &componentPool{typ: typ}
}

// get pops a recycled instance or allocates a fresh zero value.
func (p *componentPool) get() any {
	if n := len(p.free); n > 0 {
		c := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return c
	}
	return reflect.New(p.typ).Interface()
}

// recycle zeroes the instance and pushes it on the free list. The caller must
// guarantee no entity slot still references it.
func (p *componentPool) recycle(c any) {
	reflect.ValueOf(c).Elem().SetZero()
	p.free = append(p.free, c)
}

// freeCount returns the number of instances waiting on the free list.
func (p *componentPool) freeCount() int {
	return len(p.free)
}
