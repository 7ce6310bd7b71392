package ecs_test

import "github.com/cushmily/ecs"

// Common test component types
type Position struct {
	X, Y float32
}

type Velocity struct {
	DX, DY float32
}

type Name struct {
	Value string
}

type Health struct {
	Current int
	Max     int
}

type PlayerController struct{}

type AI struct {
	State int
}

type DamageEvent struct {
	Target ecs.Entity
	Amount int
}

type SpawnEvent struct {
	Kind string
}

// Custom primitive types for testing non-struct components
type Score int32
type Tag string
type Temperature float64

func mustAdd[T any](w *ecs.World, e ecs.Entity) *T {
	c, err := ecs.Add[T](w, e)
	if err != nil {
		panic(err)
	}
	return c
}
