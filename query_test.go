package ecs_test

import (
	"testing"

	"github.com/cushmily/ecs"
)

func TestQuery(t *testing.T) {
	w := ecs.NewWorld()

	var movers ecs.Query[struct {
		*Position
		*Velocity
	}]
	movers.Init(w)

	spawn := func(x, y, dx, dy float32) ecs.Entity {
		e := w.CreateEntity()
		pos := mustAdd[Position](w, e)
		pos.X, pos.Y = x, y
		vel := mustAdd[Velocity](w, e)
		vel.DX, vel.DY = dx, dy
		return e
	}

	a := spawn(1, 2, 0.5, 0.5)
	b := spawn(3, 4, 1.0, 1.0)
	static := w.CreateEntity()
	mustAdd[Position](w, static)
	w.Flush()

	t.Run("iterates full matches only", func(t *testing.T) {
		seen := make(map[ecs.Entity]bool)
		for e, m := range movers.Iter() {
			if m.Position == nil || m.Velocity == nil {
				t.Fatal("required fields must be populated")
			}
			seen[e] = true
		}
		if len(seen) != 2 || !seen[a] || !seen[b] {
			t.Errorf("expected entities %d and %d, got %v", a, b, seen)
		}
		if movers.Count() != 2 {
			t.Errorf("expected count 2, got %d", movers.Count())
		}
	})

	t.Run("fields alias stored components", func(t *testing.T) {
		for _, m := range movers.Iter() {
			m.Position.X += m.Velocity.DX
		}
		pos, err := ecs.Get[Position](w, a)
		if err != nil {
			t.Fatal(err)
		}
		if pos.X != 1.5 {
			t.Errorf("expected write through query pointer, got X=%v", pos.X)
		}
	})

	t.Run("early break", func(t *testing.T) {
		visited := 0
		for range movers.Iter() {
			visited++
			break
		}
		if visited != 1 {
			t.Errorf("expected 1 visit, got %d", visited)
		}
	})

	t.Run("values", func(t *testing.T) {
		count := 0
		for m := range movers.Values() {
			if m.Position == nil {
				t.Fatal("required fields must be populated")
			}
			count++
		}
		if count != 2 {
			t.Errorf("expected 2 results, got %d", count)
		}
	})

	t.Run("get", func(t *testing.T) {
		m := movers.Get(a)
		if m == nil {
			t.Fatal("expected result for member entity")
		}
		if m.Velocity.DX != 0.5 {
			t.Errorf("unexpected velocity %v", m.Velocity.DX)
		}
		if movers.Get(static) != nil {
			t.Error("expected nil for partial match")
		}
		if movers.Get(9999) != nil {
			t.Error("expected nil for unknown entity")
		}
	})

	t.Run("membership tracks flushes", func(t *testing.T) {
		if err := ecs.Remove[Velocity](w, b); err != nil {
			t.Fatal(err)
		}
		if movers.Count() != 2 {
			t.Error("membership must hold until flush")
		}
		w.Flush()
		if movers.Count() != 1 {
			t.Errorf("expected count 1 after flush, got %d", movers.Count())
		}
		if movers.Get(b) != nil {
			t.Error("expected nil after losing a required component")
		}
	})
}

func TestQueryNamedFields(t *testing.T) {
	w := ecs.NewWorld()

	var q ecs.Query[struct {
		Pos *Position
		Vel *Velocity `ecs:"optional"`
	}]
	q.Init(w)

	plain := w.CreateEntity()
	mustAdd[Position](w, plain)

	moving := w.CreateEntity()
	mustAdd[Position](w, moving)
	vel := mustAdd[Velocity](w, moving)
	vel.DX = 2
	w.Flush()

	if q.Count() != 2 {
		t.Fatalf("optional field must not constrain the filter, got count %d", q.Count())
	}
	for e, m := range q.Iter() {
		if m.Pos == nil {
			t.Fatal("required field must be populated")
		}
		switch e {
		case plain:
			if m.Vel != nil {
				t.Error("optional field must be nil when the component is absent")
			}
		case moving:
			if m.Vel == nil || m.Vel.DX != 2 {
				t.Error("optional field must be populated when the component is attached")
			}
		}
	}
}

func TestQueryInitPanics(t *testing.T) {
	w := ecs.NewWorld()

	expectPanic := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		fn()
	}

	t.Run("non-struct type parameter", func(t *testing.T) {
		expectPanic(t, func() {
			var q ecs.Query[int]
			q.Init(w)
		})
	})

	t.Run("non-pointer field", func(t *testing.T) {
		expectPanic(t, func() {
			var q ecs.Query[struct{ Pos Position }]
			q.Init(w)
		})
	})

	t.Run("unknown tag value", func(t *testing.T) {
		expectPanic(t, func() {
			var q ecs.Query[struct {
				Pos *Position `ecs:"maybe"`
			}]
			q.Init(w)
		})
	})

	t.Run("no required field", func(t *testing.T) {
		expectPanic(t, func() {
			var q ecs.Query[struct {
				Pos *Position `ecs:"optional"`
			}]
			q.Init(w)
		})
	})
}

func TestEventQuery(t *testing.T) {
	w := ecs.NewWorld()

	var damage ecs.EventQuery[struct{ *DamageEvent }]
	damage.Init(w)

	g := ecs.NewSystemGroup(w)
	if err := g.Initialize(); err != nil {
		t.Fatal(err)
	}

	target := w.CreateEntity()
	ev := ecs.CreateEvent[DamageEvent](w)
	ev.Target = target
	ev.Amount = 7
	w.Flush()

	if damage.Count() != 1 {
		t.Fatalf("expected 1 pending event, got %d", damage.Count())
	}
	for _, d := range damage.Iter() {
		if d.DamageEvent.Target != target || d.DamageEvent.Amount != 7 {
			t.Errorf("unexpected event payload %+v", *d.DamageEvent)
		}
	}

	// The update pass consumes pending events.
	if err := g.Run(); err != nil {
		t.Fatal(err)
	}
	if damage.Count() != 0 {
		t.Errorf("expected events consumed after update pass, got %d", damage.Count())
	}
}
