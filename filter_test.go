package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cushmily/ecs"
)

func TestGetFilter(t *testing.T) {
	w := ecs.NewWorld()
	mask := ecs.NewMask(ecs.TypeID[Position](w), ecs.TypeID[Velocity](w))

	f1, err := w.GetFilter(mask, false)
	assert.Nil(t, err)
	f2, err := w.GetFilter(mask, false)
	assert.Nil(t, err)
	assert.Same(t, f1, f2, "same mask and kind resolve to the same filter")

	events, err := w.GetFilter(mask, true)
	assert.Nil(t, err)
	assert.NotSame(t, f1, events, "event filters are cached separately")
	assert.True(t, events.ForEvents())
	assert.False(t, f1.ForEvents())
	assert.Equal(t, mask, f1.Mask())

	_, err = w.GetFilter(ecs.Mask{}, false)
	assert.ErrorIs(t, err, ecs.ErrInvalidArgument)
}

func TestFilterMembership(t *testing.T) {
	w := ecs.NewWorld()
	mask := ecs.NewMask(ecs.TypeID[Position](w), ecs.TypeID[Velocity](w))
	f, err := w.GetFilter(mask, false)
	assert.Nil(t, err)

	e := w.CreateEntity()
	mustAdd[Position](w, e)
	w.Flush()
	assert.Equal(t, 0, f.Count(), "partial match stays out")

	mustAdd[Velocity](w, e)
	assert.False(t, f.Contains(e), "membership waits for flush")
	w.Flush()
	assert.True(t, f.Contains(e))
	assert.Equal(t, 1, f.Count())

	// Unrelated components do not move membership.
	mustAdd[Name](w, e)
	w.Flush()
	assert.True(t, f.Contains(e))
	assert.Nil(t, ecs.Remove[Name](w, e))
	w.Flush()
	assert.True(t, f.Contains(e))

	// Losing a required component removes the entity at flush.
	assert.Nil(t, ecs.Remove[Velocity](w, e))
	assert.True(t, f.Contains(e), "membership holds until flush")
	w.Flush()
	assert.False(t, f.Contains(e))
	assert.Equal(t, 0, f.Count())
}

func TestFilterRemoveEntity(t *testing.T) {
	w := ecs.NewWorld()
	f, err := w.GetFilter(ecs.NewMask(ecs.TypeID[Position](w)), false)
	assert.Nil(t, err)

	e := w.CreateEntity()
	mustAdd[Position](w, e)
	w.Flush()
	assert.Equal(t, 1, f.Count())

	assert.Nil(t, w.RemoveEntity(e))
	w.Flush()
	assert.Equal(t, 0, f.Count())
	assert.False(t, f.Contains(e))
}

func TestFilterDoesNotScanExistingEntities(t *testing.T) {
	w := ecs.NewWorld()

	e := w.CreateEntity()
	mustAdd[Position](w, e)
	w.Flush()

	f, err := w.GetFilter(ecs.NewMask(ecs.TypeID[Position](w)), false)
	assert.Nil(t, err)
	assert.Equal(t, 0, f.Count(), "filters created late start empty")

	// Later transitions are tracked as usual.
	other := w.CreateEntity()
	mustAdd[Position](w, other)
	w.Flush()
	assert.True(t, f.Contains(other))
	assert.False(t, f.Contains(e))
}

func TestFilterSwapRemove(t *testing.T) {
	w := ecs.NewWorld()
	f, err := w.GetFilter(ecs.NewMask(ecs.TypeID[Position](w)), false)
	assert.Nil(t, err)

	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	mustAdd[Position](w, a)
	mustAdd[Position](w, b)
	mustAdd[Position](w, c)
	w.Flush()
	assert.Equal(t, []ecs.Entity{a, b, c}, f.Entities())

	assert.Nil(t, ecs.Remove[Position](w, b))
	w.Flush()

	assert.Equal(t, 2, f.Count())
	assert.True(t, f.Contains(a))
	assert.True(t, f.Contains(c))
	assert.False(t, f.Contains(b))
	// The last member fills the vacated slot.
	assert.Equal(t, []ecs.Entity{a, c}, f.Entities())
}

func TestEventFilterSweep(t *testing.T) {
	w := ecs.NewWorld()
	f, err := w.GetFilter(ecs.NewMask(ecs.TypeID[DamageEvent](w)), true)
	assert.Nil(t, err)

	g := ecs.NewSystemGroup(w)
	assert.Nil(t, g.Initialize())

	ev := ecs.CreateEvent[DamageEvent](w)
	ev.Amount = 12
	w.Flush()
	assert.Equal(t, 1, f.Count())
	published := f.Entities()[0]

	// A fixed pass does not consume events.
	assert.Nil(t, g.RunFixed())
	assert.Equal(t, 1, f.Count())

	// The update pass sweeps them and frees the entity.
	assert.Nil(t, g.Run())
	assert.Equal(t, 0, f.Count())
	assert.False(t, w.Alive(published))
}
