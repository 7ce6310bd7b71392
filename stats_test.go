package ecs

import (
	"testing"
	"time"
)

func TestWorldStats(t *testing.T) {
	w := NewWorld()

	stats := w.CollectStats()
	if stats.EntityCount != 0 {
		t.Errorf("expected 0 entities, got %d", stats.EntityCount)
	}
	if stats.TypeCount != 0 {
		t.Errorf("expected 0 types, got %d", stats.TypeCount)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("expected empty queue, got %d", stats.QueueDepth)
	}

	filter, err := w.GetFilter(NewMask(TypeID[int](w)), false)
	if err != nil {
		t.Fatal(err)
	}

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()
	if _, err := Add[int](w, e1); err != nil {
		t.Fatal(err)
	}
	if _, err := Add[string](w, e1); err != nil {
		t.Fatal(err)
	}
	if _, err := Add[int](w, e2); err != nil {
		t.Fatal(err)
	}
	if _, err := Add[float64](w, e3); err != nil {
		t.Fatal(err)
	}

	if depth := w.CollectStats().QueueDepth; depth != 4 {
		t.Errorf("expected 4 queued records, got %d", depth)
	}
	w.Flush()

	stats = w.CollectStats()
	if stats.EntityCount != 3 {
		t.Errorf("expected 3 entities, got %d", stats.EntityCount)
	}
	if stats.ReservedCount != 0 {
		t.Errorf("expected 0 reserved slots, got %d", stats.ReservedCount)
	}
	if stats.TypeCount != 3 {
		t.Errorf("expected 3 types, got %d", stats.TypeCount)
	}
	if stats.QueueDepth != 0 {
		t.Errorf("expected empty queue after flush, got %d", stats.QueueDepth)
	}

	if len(stats.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(stats.Filters))
	}
	fs := stats.Filters[0]
	if fs.EntityCount != 2 {
		t.Errorf("expected 2 filter members, got %d", fs.EntityCount)
	}
	if fs.ForEvents {
		t.Error("expected a non-event filter")
	}
	if len(fs.Components) != 1 || fs.Components[0] != "int" {
		t.Errorf("expected component names [int], got %v", fs.Components)
	}
	if !fs.Mask.Equals(filter.Mask()) {
		t.Error("filter stats mask mismatch")
	}

	if len(stats.Pools) != 3 {
		t.Fatalf("expected 3 pools, got %d", len(stats.Pools))
	}
	for _, ps := range stats.Pools {
		if ps.FreeCount != 0 {
			t.Errorf("expected empty free list for %s, got %d", ps.Type, ps.FreeCount)
		}
	}

	// Removing an entity reserves its slot and returns instances to pools.
	if err := w.RemoveEntity(e1); err != nil {
		t.Fatal(err)
	}
	w.Flush()

	stats = w.CollectStats()
	if stats.EntityCount != 2 {
		t.Errorf("expected 2 live entities, got %d", stats.EntityCount)
	}
	if stats.ReservedCount != 1 {
		t.Errorf("expected 1 reserved slot, got %d", stats.ReservedCount)
	}
	freed := 0
	for _, ps := range stats.Pools {
		freed += ps.FreeCount
	}
	if freed != 2 {
		t.Errorf("expected 2 recycled instances across pools, got %d", freed)
	}
}

func TestWorldIntrospection(t *testing.T) {
	w := NewWorld()

	e := w.CreateEntity()
	other := w.CreateEntity()
	n, err := Add[int](w, e)
	if err != nil {
		t.Fatal(err)
	}
	*n = 42
	s, err := Add[string](w, e)
	if err != nil {
		t.Fatal(err)
	}
	*s = "named"
	w.Flush()

	var ids []Entity
	for id := range w.Entities() {
		ids = append(ids, id)
	}
	if len(ids) != 2 || ids[0] != e || ids[1] != other {
		t.Errorf("expected ascending live ids [%d %d], got %v", e, other, ids)
	}

	mask, err := w.MaskOf(e)
	if err != nil {
		t.Fatal(err)
	}
	if mask.Count() != 2 {
		t.Errorf("expected 2 mask bits, got %d", mask.Count())
	}

	components, err := w.ComponentsOf(e)
	if err != nil {
		t.Fatal(err)
	}
	if len(components) != 2 {
		t.Fatalf("expected 2 attached components, got %d", len(components))
	}
	if got, ok := components[0].(*int); !ok || *got != 42 {
		t.Errorf("expected *int 42 first, got %T %v", components[0], components[0])
	}
	if got, ok := components[1].(*string); !ok || *got != "named" {
		t.Errorf("expected *string second, got %T %v", components[1], components[1])
	}

	if w.TypeCount() != 2 {
		t.Errorf("expected 2 registered types, got %d", w.TypeCount())
	}
	if typ := w.TypeOf(TypeID[int](w)); typ == nil || typ.Kind().String() != "int" {
		t.Errorf("unexpected type for int id: %v", typ)
	}
	if len(w.Filters()) != 0 {
		t.Errorf("expected no filters, got %d", len(w.Filters()))
	}
}

type timedSystem struct {
	runCount int
	sleepDur time.Duration
}

func (s *timedSystem) Run() {
	s.runCount++
	if s.sleepDur > 0 {
		time.Sleep(s.sleepDur)
	}
}

type untimedSystem struct{}

func (s *untimedSystem) Initialize() {}
func (s *untimedSystem) Destroy()    {}

func TestGroupStats(t *testing.T) {
	w := NewWorld()
	g := NewSystemGroup(w)

	stats := g.GetStats()
	if stats.SystemCount != 0 {
		t.Errorf("expected 0 systems, got %d", stats.SystemCount)
	}
	if stats.TotalExecutions != 0 {
		t.Errorf("expected 0 total executions, got %d", stats.TotalExecutions)
	}

	sys1 := &timedSystem{sleepDur: 1 * time.Millisecond}
	sys2 := &timedSystem{sleepDur: 2 * time.Millisecond}
	idle := &untimedSystem{}
	if err := g.Add(sys1); err != nil {
		t.Fatal(err)
	}
	if err := g.Add(sys2); err != nil {
		t.Fatal(err)
	}
	if err := g.Add(idle); err != nil {
		t.Fatal(err)
	}

	stats = g.GetStats()
	if stats.SystemCount != 3 {
		t.Errorf("expected 3 systems, got %d", stats.SystemCount)
	}

	if err := g.Initialize(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := g.Run(); err != nil {
			t.Fatal(err)
		}
	}

	stats = g.GetStats()
	if stats.TotalExecutions != 6 {
		t.Errorf("expected 6 total executions (2 timed systems * 3 runs), got %d", stats.TotalExecutions)
	}
	if len(stats.Systems) != 3 {
		t.Fatalf("expected 3 system stats, got %d", len(stats.Systems))
	}

	for _, sysStats := range stats.Systems[:2] {
		if sysStats.Name != "timedSystem" {
			t.Errorf("expected system name 'timedSystem', got '%s'", sysStats.Name)
		}
		if !sysStats.Enabled {
			t.Error("expected system enabled")
		}
		if sysStats.ExecutionCount != 3 {
			t.Errorf("expected 3 executions, got %d", sysStats.ExecutionCount)
		}
		if sysStats.MinDuration == 0 {
			t.Error("expected non-zero min duration")
		}
		if sysStats.MaxDuration == 0 {
			t.Error("expected non-zero max duration")
		}
		if sysStats.AvgDuration == 0 {
			t.Error("expected non-zero avg duration")
		}
		if sysStats.LastDuration == 0 {
			t.Error("expected non-zero last duration")
		}
		if sysStats.TotalDuration == 0 {
			t.Error("expected non-zero total duration")
		}
		if sysStats.MinDuration > sysStats.AvgDuration {
			t.Errorf("min duration (%v) should be <= avg duration (%v)", sysStats.MinDuration, sysStats.AvgDuration)
		}
		if sysStats.AvgDuration > sysStats.MaxDuration {
			t.Errorf("avg duration (%v) should be <= max duration (%v)", sysStats.AvgDuration, sysStats.MaxDuration)
		}
	}

	idleStats := stats.Systems[2]
	if idleStats.Name != "untimedSystem" {
		t.Errorf("expected system name 'untimedSystem', got '%s'", idleStats.Name)
	}
	if idleStats.ExecutionCount != 0 {
		t.Errorf("expected 0 executions for init-only system, got %d", idleStats.ExecutionCount)
	}
	if idleStats.MinDuration != 0 || idleStats.AvgDuration != 0 {
		t.Error("expected zeroed durations for a system that never ran")
	}

	if sys1.runCount != 3 {
		t.Errorf("expected sys1 to run 3 times, got %d", sys1.runCount)
	}
	if sys2.runCount != 3 {
		t.Errorf("expected sys2 to run 3 times, got %d", sys2.runCount)
	}
}
