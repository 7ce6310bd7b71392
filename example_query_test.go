package ecs_test

import (
	"fmt"

	"github.com/cushmily/ecs"
)

// ExampleQuery iterates every entity carrying the queried component set.
// Acquire queries before spawning entities; membership is maintained
// incrementally as flushes apply structural changes.
func ExampleQuery() {
	w := ecs.NewWorld()

	var movers ecs.Query[struct {
		*Position
		*Velocity
	}]
	movers.Init(w)

	for i := 0; i < 3; i++ {
		e := w.CreateEntity()
		pos, _ := ecs.Add[Position](w, e)
		pos.X = float32(i * 10)
		vel, _ := ecs.Add[Velocity](w, e)
		vel.DX = 1
	}
	scenery := w.CreateEntity()
	ecs.Add[Position](w, scenery)
	w.Flush()

	for e, m := range movers.Iter() {
		m.Position.X += m.Velocity.DX
		fmt.Printf("entity %d at x=%.0f\n", e, m.Position.X)
	}
	fmt.Println("movers:", movers.Count())

	// Output:
	// entity 0 at x=1
	// entity 1 at x=11
	// entity 2 at x=21
	// movers: 3
}

// ExampleQuery_optional marks a field `ecs:"optional"`: it does not narrow
// the match and resolves to nil when the component is absent.
func ExampleQuery_optional() {
	w := ecs.NewWorld()

	var units ecs.Query[struct {
		Pos  *Position
		Ctrl *PlayerController `ecs:"optional"`
	}]
	units.Init(w)

	npc := w.CreateEntity()
	ecs.Add[Position](w, npc)

	hero := w.CreateEntity()
	ecs.Add[Position](w, hero)
	ecs.Add[PlayerController](w, hero)
	w.Flush()

	for e, u := range units.Iter() {
		fmt.Printf("entity %d player-controlled: %v\n", e, u.Ctrl != nil)
	}

	// Output:
	// entity 0 player-controlled: false
	// entity 1 player-controlled: true
}

// ExampleEventQuery consumes one-shot event entities. Events published
// during an update pass are visible to the systems after the publisher and
// are swept when the pass ends.
func ExampleEventQuery() {
	w := ecs.NewWorld()

	var spawns ecs.EventQuery[struct{ *SpawnEvent }]
	spawns.Init(w)

	g := ecs.NewSystemGroup(w)
	g.Initialize()

	ev := ecs.CreateEvent[SpawnEvent](w)
	ev.Kind = "goblin"
	w.Flush()

	for _, s := range spawns.Iter() {
		fmt.Println("spawn requested:", s.SpawnEvent.Kind)
	}

	g.Run()
	fmt.Println("pending after pass:", spawns.Count())

	// Output:
	// spawn requested: goblin
	// pending after pass: 0
}
