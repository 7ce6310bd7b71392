package ecs

// Systems declare lifecycle participation by implementing any combination of
// the capability interfaces below. A SystemGroup classifies each registered
// system by the interfaces it satisfies; a system implementing none of them is
// legal and simply never invoked.

// PreInitSystem runs before regular initialization and is torn down last.
type PreInitSystem interface {
	PreInitialize()
	PreDestroy()
}

// InitSystem runs setup after all pre-init systems and teardown in reverse
// registration order.
type InitSystem interface {
	Initialize()
	Destroy()
}

// RunSystem executes once per update pass, in registration order.
type RunSystem interface {
	Run()
}

// FixedRunSystem executes once per fixed-step pass. Fixed passes are driven
// separately from update passes and do not sweep event filters.
type FixedRunSystem interface {
	RunFixed()
}

// GroupDebugListener observes SystemGroup teardown. Debug tooling only; not
// part of the functional contract.
type GroupDebugListener interface {
	OnGroupDestroyed(group *SystemGroup)
}
