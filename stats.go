package ecs

import (
	"iter"
	"reflect"
	"time"
)

// WorldStats is a point-in-time snapshot of a world's storage, used by debug
// tooling and soak reports.
type WorldStats struct {
	EntityCount   int
	ReservedCount int
	TypeCount     int
	QueueDepth    int
	Filters       []FilterStats
	Pools         []PoolStats
}

// FilterStats describes one registered filter.
type FilterStats struct {
	Mask        Mask
	ForEvents   bool
	EntityCount int
	Components  []string
}

// PoolStats describes one component pool.
type PoolStats struct {
	Type      string
	FreeCount int
}

// CollectStats gathers a storage snapshot. Meant for debug overlays and
// reports, not hot paths; it allocates.
func (w *World) CollectStats() WorldStats {
	stats := WorldStats{
		TypeCount:  w.registry.count(),
		QueueDepth: len(w.queue),
	}
	for i := range w.entities {
		if w.entities[i].reserved {
			stats.ReservedCount++
		} else {
			stats.EntityCount++
		}
	}
	for _, f := range w.filters {
		names := make([]string, 0, f.mask.Count())
		for id := range f.mask.Bits() {
			names = append(names, w.registry.typeOf(id).String())
		}
		stats.Filters = append(stats.Filters, FilterStats{
			Mask:        f.mask,
			ForEvents:   f.forEvents,
			EntityCount: len(f.entities),
			Components:  names,
		})
	}
	for id, p := range w.pools {
		if p == nil {
			continue
		}
		stats.Pools = append(stats.Pools, PoolStats{
			Type:      w.registry.typeOf(ComponentID(id)).String(),
			FreeCount: p.freeCount(),
		})
	}
	return stats
}

// Entities iterates all live entity ids in ascending order. Entities with a
// pending removal are included until the flush that reserves them.
func (w *World) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := range w.entities {
			if w.entities[i].reserved {
				continue
			}
			if !yield(Entity(i)) {
				return
			}
		}
	}
}

// MaskOf returns the entity's current component mask. Pending adds and
// removes are not reflected until flush.
func (w *World) MaskOf(e Entity) (Mask, error) {
	ed, err := w.slot(e)
	if err != nil {
		return Mask{}, err
	}
	return ed.mask, nil
}

// ComponentsOf returns the entity's attached component instances in id order.
// Instances stored by a pending add are excluded until their flush.
func (w *World) ComponentsOf(e Entity) ([]any, error) {
	ed, err := w.slot(e)
	if err != nil {
		return nil, err
	}
	components := make([]any, 0, ed.mask.Count())
	for id := range ed.mask.Bits() {
		components = append(components, ed.components[id])
	}
	return components, nil
}

// TypeOf returns the component type registered under id, or nil for an
// unassigned id.
func (w *World) TypeOf(id ComponentID) reflect.Type {
	return w.registry.typeOf(id)
}

// TypeCount returns the number of registered component types.
func (w *World) TypeCount() int {
	return w.registry.count()
}

// Filters returns the registered filters. The slice is owned by the world;
// treat it as read-only.
func (w *World) Filters() []*Filter {
	return w.filters
}

// GroupStats provides execution statistics for a SystemGroup.
type GroupStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides run-phase timing for a single system. Initialize and
// Destroy invocations are not timed.
type SystemStats struct {
	Name           string
	Enabled        bool
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// GetStats returns statistics about system execution.
func (g *SystemGroup) GetStats() *GroupStats {
	stats := &GroupStats{
		SystemCount: len(g.systems),
		Systems:     make([]SystemStats, len(g.systems)),
	}

	var totalExecs int64
	for i, rs := range g.systems {
		minDuration := rs.timings.minDuration
		avgDuration := time.Duration(0)
		if rs.timings.executions > 0 {
			avgDuration = rs.timings.totalDuration / time.Duration(rs.timings.executions)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           rs.name,
			Enabled:        rs.enabled,
			ExecutionCount: rs.timings.executions,
			MinDuration:    minDuration,
			MaxDuration:    rs.timings.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   rs.timings.lastDuration,
			TotalDuration:  rs.timings.totalDuration,
		}
		totalExecs += rs.timings.executions
	}

	stats.TotalExecutions = totalExecs
	return stats
}
