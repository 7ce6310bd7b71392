package debugui

import (
	"github.com/cushmily/ecs"
)

// EntityBrowser lists live entities with their masks and component types.
type EntityBrowser struct {
	cache              *entityBrowserCache
	selected           ecs.Entity
	hasSelection       bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspector shows editable component fields for the entity selected
// in the EntityBrowser.
type ComponentInspector struct {
	selected     ecs.Entity
	hasSelection bool
}

// FilterViewer lists every registered filter with its mask, kind and member
// count.
type FilterViewer struct {
	cache         *filterViewerCache
	sortColumn    int
	sortAscending bool
}

// MaskProber counts entities matching an ad-hoc component selection and shows
// which registered filters already cover it.
type MaskProber struct {
	selectedTypes map[ecs.ComponentID]bool
	cache         *maskProberCache
}

// PerformanceStats plots frame times and summarizes world storage counters.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
