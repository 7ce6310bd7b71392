package ecs

import "fmt"

// ComponentListener observes component attach and detach transitions on a
// World. Callbacks fire synchronously during flush, after the mask change and
// before the filter update for detach recycling; the component value passed to
// OnComponentDetach is still live and is pool-recycled right after the call
// returns.
type ComponentListener interface {
	OnComponentAttach(e Entity, component any)
	OnComponentDetach(e Entity, component any)
}

// World owns entity slots, component pools, filters and the delayed update
// queue. All structural mutation is queued and applied at flush points; reads
// are immediate. A World is single-threaded by contract: one goroutine drives
// systems, mutation and flushes.
type World struct {
	entities []entityData
	freeIds  []Entity

	registry *typeRegistry
	pools    []*componentPool

	filters  []*Filter
	queue    []delayedUpdate
	flushing bool

	listeners []ComponentListener
}

// WorldOption configures a World at construction time.
type WorldOption func(*worldConfig)

type worldConfig struct {
	entityCap int
	queueCap  int
}

// WithEntityCapacity pre-sizes the entity store for n entities.
func WithEntityCapacity(n int) WorldOption {
	return func(c *worldConfig) { c.entityCap = n }
}

// WithQueueCapacity pre-sizes the delayed update queue for n records.
func WithQueueCapacity(n int) WorldOption {
	return func(c *worldConfig) { c.queueCap = n }
}

// NewWorld creates an empty world.
func NewWorld(opts ...WorldOption) *World {
	cfg := worldConfig{entityCap: 256, queueCap: 128}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &World{
		entities: make([]entityData, 0, cfg.entityCap),
		freeIds:  make([]Entity, 0, 64),
		registry: newTypeRegistry(),
		queue:    make([]delayedUpdate, 0, cfg.queueCap),
	}
}

// CreateEntity returns a live entity id. Freed ids are reused most recently
// freed first; only when the free list is empty does the store grow. The
// returned entity's mask is empty.
func (w *World) CreateEntity() Entity {
	if n := len(w.freeIds); n > 0 {
		e := w.freeIds[n-1]
		w.freeIds = w.freeIds[:n-1]
		w.entities[e].reserved = false
		return e
	}
	w.entities = append(w.entities, entityData{})
	return Entity(len(w.entities) - 1)
}

// RemoveEntity queues the entity for destruction at the next flush. Removing
// an already-dead entity is a no-op; an out-of-range id is an error. Until the
// flush runs the entity stays visible to filters and GetComponent.
func (w *World) RemoveEntity(e Entity) error {
	if e < 0 || int(e) >= len(w.entities) {
		return invalidEntityError(e, "out of range")
	}
	if w.entities[e].reserved {
		return nil
	}
	w.queue = append(w.queue, delayedUpdate{op: opRemoveEntity, entity: e})
	return nil
}

// AddComponentListener subscribes a listener to attach/detach broadcasts.
// Listeners are invoked in subscription order.
func (w *World) AddComponentListener(l ComponentListener) error {
	if l == nil {
		return fmt.Errorf("%w: nil component listener", ErrInvalidArgument)
	}
	for _, existing := range w.listeners {
		if existing == l {
			return fmt.Errorf("%w: component listener already subscribed", ErrLifecycleViolation)
		}
	}
	w.listeners = append(w.listeners, l)
	return nil
}

// RemoveComponentListener unsubscribes a previously added listener.
func (w *World) RemoveComponentListener(l ComponentListener) error {
	if l == nil {
		return fmt.Errorf("%w: nil component listener", ErrInvalidArgument)
	}
	for i, existing := range w.listeners {
		if existing == l {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: component listener not subscribed", ErrInvalidArgument)
}

func (w *World) notifyAttach(e Entity, component any) {
	for _, l := range w.listeners {
		l.OnComponentAttach(e, component)
	}
}

func (w *World) notifyDetach(e Entity, component any) {
	for _, l := range w.listeners {
		l.OnComponentDetach(e, component)
	}
}
