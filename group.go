package ecs

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

type groupState uint8

const (
	groupCreated groupState = iota
	groupInitialized
	groupDestroyed
)

// registeredSystem pairs a system with its bookkeeping. Registration order is
// the single source of execution order for every phase.
type registeredSystem struct {
	system  any
	name    string
	enabled bool
	timings systemTimings
}

type systemTimings struct {
	executions    int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func (t *systemTimings) record(d time.Duration) {
	t.executions++
	t.lastDuration = d
	t.totalDuration += d
	if d < t.minDuration {
		t.minDuration = d
	}
	if d > t.maxDuration {
		t.maxDuration = d
	}
}

// SystemGroup drives an ordered set of systems through their lifecycle
// against one world. The group flushes the world's delayed update queue after
// every system invocation, so each system observes the structural effects of
// the systems before it.
//
// Lifecycle: Add any number of systems, Initialize once, any number of Run
// and RunFixed passes, Destroy once. Violations report ErrLifecycleViolation.
type SystemGroup struct {
	world          *World
	state          groupState
	systems        []*registeredSystem
	debugListeners []GroupDebugListener
}

// NewSystemGroup creates an empty group bound to the world.
func NewSystemGroup(w *World) *SystemGroup {
	return &SystemGroup{world: w}
}

// World returns the world this group drives.
func (g *SystemGroup) World() *World {
	return g.world
}

// Add registers a system and injects its world and query fields. Systems can
// only be added before Initialize. The system may implement any combination
// of the capability interfaces, including none.
func (g *SystemGroup) Add(system any) error {
	if system == nil {
		return fmt.Errorf("%w: nil system", ErrInvalidArgument)
	}
	if g.state != groupCreated {
		return fmt.Errorf("%w: cannot add systems after Initialize", ErrLifecycleViolation)
	}
	injectSystemFields(g.world, system)
	g.systems = append(g.systems, &registeredSystem{
		system:  system,
		name:    systemName(system),
		enabled: true,
		timings: systemTimings{minDuration: time.Duration(1<<63 - 1)},
	})
	return nil
}

// Initialize runs all pre-init systems in registration order, then all init
// systems in registration order, flushing the world after each invocation.
func (g *SystemGroup) Initialize() error {
	if g.state != groupCreated {
		return fmt.Errorf("%w: group already initialized", ErrLifecycleViolation)
	}
	g.state = groupInitialized
	for _, rs := range g.systems {
		if s, ok := rs.system.(PreInitSystem); ok {
			s.PreInitialize()
			g.world.Flush()
		}
	}
	for _, rs := range g.systems {
		if s, ok := rs.system.(InitSystem); ok {
			s.Initialize()
			g.world.Flush()
		}
	}
	return nil
}

// Run executes one update pass: every enabled run system in registration
// order with a flush after each, then the event filter sweep and a final
// flush. When Run returns, all structural changes queued during the pass are
// applied and every event entity from this pass is gone.
func (g *SystemGroup) Run() error {
	if g.state != groupInitialized {
		return fmt.Errorf("%w: group is not initialized", ErrLifecycleViolation)
	}
	for _, rs := range g.systems {
		s, ok := rs.system.(RunSystem)
		if !ok || !rs.enabled {
			continue
		}
		start := time.Now()
		s.Run()
		rs.timings.record(time.Since(start))
		g.world.Flush()
	}
	g.world.sweepEvents()
	g.world.Flush()
	return nil
}

// RunLoop executes update passes at the given interval until the context is
// cancelled. Fixed-step passes are not driven here; call RunFixed from your
// own clock when fixed systems are registered.
func (g *SystemGroup) RunLoop(ctx context.Context, interval time.Duration) error {
	if g.state != groupInitialized {
		return fmt.Errorf("%w: group is not initialized", ErrLifecycleViolation)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := g.Run(); err != nil {
				return err
			}
		}
	}
}

// RunFixed executes one fixed-step pass: every enabled fixed system in
// registration order with a flush after each. Fixed passes do not sweep event
// filters; events belong to the update pass that created them.
func (g *SystemGroup) RunFixed() error {
	if g.state != groupInitialized {
		return fmt.Errorf("%w: group is not initialized", ErrLifecycleViolation)
	}
	for _, rs := range g.systems {
		s, ok := rs.system.(FixedRunSystem)
		if !ok || !rs.enabled {
			continue
		}
		start := time.Now()
		s.RunFixed()
		rs.timings.record(time.Since(start))
		g.world.Flush()
	}
	return nil
}

// Destroy tears the group down: init systems in reverse registration order,
// then pre-init systems in reverse order, flushing after each. Debug
// listeners are notified before the registration lists are cleared.
func (g *SystemGroup) Destroy() error {
	if g.state != groupInitialized {
		return fmt.Errorf("%w: group is not initialized", ErrLifecycleViolation)
	}
	g.state = groupDestroyed
	for i := len(g.systems) - 1; i >= 0; i-- {
		if s, ok := g.systems[i].system.(InitSystem); ok {
			s.Destroy()
			g.world.Flush()
		}
	}
	for i := len(g.systems) - 1; i >= 0; i-- {
		if s, ok := g.systems[i].system.(PreInitSystem); ok {
			s.PreDestroy()
			g.world.Flush()
		}
	}
	for _, l := range g.debugListeners {
		l.OnGroupDestroyed(g)
	}
	g.systems = nil
	return nil
}

// SetEnabled toggles whether the system participates in Run and RunFixed
// passes. Disabled systems stay registered and still take part in Initialize
// and Destroy. The system is matched by identity.
func (g *SystemGroup) SetEnabled(system any, enabled bool) error {
	for _, rs := range g.systems {
		if rs.system == system {
			rs.enabled = enabled
			return nil
		}
	}
	return fmt.Errorf("%w: system is not registered", ErrInvalidArgument)
}

// Enabled reports whether the system participates in run passes.
func (g *SystemGroup) Enabled(system any) (bool, error) {
	for _, rs := range g.systems {
		if rs.system == system {
			return rs.enabled, nil
		}
	}
	return false, fmt.Errorf("%w: system is not registered", ErrInvalidArgument)
}

// AddDebugListener subscribes a teardown observer.
func (g *SystemGroup) AddDebugListener(l GroupDebugListener) error {
	if l == nil {
		return fmt.Errorf("%w: nil debug listener", ErrInvalidArgument)
	}
	for _, existing := range g.debugListeners {
		if existing == l {
			return fmt.Errorf("%w: debug listener already subscribed", ErrLifecycleViolation)
		}
	}
	g.debugListeners = append(g.debugListeners, l)
	return nil
}

// RemoveDebugListener unsubscribes a previously added observer.
func (g *SystemGroup) RemoveDebugListener(l GroupDebugListener) error {
	if l == nil {
		return fmt.Errorf("%w: nil debug listener", ErrInvalidArgument)
	}
	for i, existing := range g.debugListeners {
		if existing == l {
			g.debugListeners = append(g.debugListeners[:i], g.debugListeners[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: debug listener not subscribed", ErrInvalidArgument)
}

func systemName(system any) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
