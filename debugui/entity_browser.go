package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/cushmily/ecs"
)

// EntityInfo is one row of the browser table.
type EntityInfo struct {
	ID             ecs.Entity
	Mask           ecs.Mask
	ComponentTypes []string
	ComponentCount int
}

type entityBrowserCache struct {
	entities        []EntityInfo
	lastEntityCount int
	lastTypeCount   int
	sortColumn      int
	sortAscending   bool
}

// NewEntityBrowser creates a browser showing at most maxEntitiesPerPage rows
// per page.
func NewEntityBrowser(maxEntitiesPerPage int) EntityBrowser {
	return EntityBrowser{
		cache: &entityBrowserCache{
			lastEntityCount: -1,
			sortColumn:      0,
			sortAscending:   true,
		},
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (eb *EntityBrowser) Render(w *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.rebuildCacheIfNeeded(w)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}
	imgui.SameLine()
	if imgui.Button("Refresh") {
		eb.cache.entities = nil
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			eb.cache.sortColumn = int(spec.ColumnIndex())
			eb.cache.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			eb.sortEntities()
			sortSpecs.SetSpecsDirty(false)
		}

		filteredEntities := eb.getFilteredEntities()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		endIdx := startIdx + eb.maxEntitiesPerPage
		if startIdx > len(filteredEntities) {
			startIdx = 0
			eb.currentPage = 0
		}
		if endIdx > len(filteredEntities) {
			endIdx = len(filteredEntities)
		}

		for i := startIdx; i < endIdx; i++ {
			entity := filteredEntities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.hasSelection && eb.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
				eb.hasSelection = true
			}

			imgui.TableNextColumn()
			imgui.Text(entity.Mask.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entity.ComponentCount))
		}

		imgui.EndTable()
	}

	filteredEntities := eb.getFilteredEntities()

	if len(filteredEntities) > eb.maxEntitiesPerPage {
		totalPages := (len(filteredEntities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(filteredEntities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filteredEntities)))
	}

	imgui.End()
}

// Selected returns the entity picked in the table and whether there is one.
func (eb *EntityBrowser) Selected() (ecs.Entity, bool) {
	return eb.selected, eb.hasSelection
}

// Select focuses the browser and inspector on an entity programmatically.
func (eb *EntityBrowser) Select(e ecs.Entity) {
	eb.selected = e
	eb.hasSelection = true
}

func (eb *EntityBrowser) rebuildCacheIfNeeded(w *ecs.World) {
	stats := w.CollectStats()
	if eb.cache.lastEntityCount != stats.EntityCount || eb.cache.lastTypeCount != stats.TypeCount {
		eb.cache.entities = nil
		eb.cache.lastEntityCount = stats.EntityCount
		eb.cache.lastTypeCount = stats.TypeCount
	}

	if eb.cache.entities == nil {
		eb.rebuildCache(w)
	}
}

func (eb *EntityBrowser) rebuildCache(w *ecs.World) {
	eb.cache.entities = make([]EntityInfo, 0, 1024)

	for e := range w.Entities() {
		mask, err := w.MaskOf(e)
		if err != nil {
			continue
		}
		componentTypes := make([]string, 0, mask.Count())
		for id := range mask.Bits() {
			componentTypes = append(componentTypes, w.TypeOf(id).String())
		}
		eb.cache.entities = append(eb.cache.entities, EntityInfo{
			ID:             e,
			Mask:           mask,
			ComponentTypes: componentTypes,
			ComponentCount: len(componentTypes),
		})
	}

	eb.sortEntities()
}

func (eb *EntityBrowser) sortEntities() {
	sort.Slice(eb.cache.entities, func(i, j int) bool {
		a, b := eb.cache.entities[i], eb.cache.entities[j]
		var less bool

		switch eb.cache.sortColumn {
		case 0:
			less = a.ID < b.ID
		case 1:
			less = a.Mask.String() < b.Mask.String()
		case 2:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 3:
			less = a.ComponentCount < b.ComponentCount
		default:
			less = a.ID < b.ID
		}

		if !eb.cache.sortAscending {
			return !less
		}
		return less
	})
}

func (eb *EntityBrowser) getFilteredEntities() []EntityInfo {
	if eb.filterText == "" {
		return eb.cache.entities
	}

	filtered := make([]EntityInfo, 0, len(eb.cache.entities))
	filterLower := strings.ToLower(eb.filterText)

	for _, entity := range eb.cache.entities {
		idStr := fmt.Sprintf("%d", entity.ID)
		componentsStr := strings.ToLower(strings.Join(entity.ComponentTypes, " "))

		if !strings.Contains(idStr, filterLower) &&
			!strings.Contains(componentsStr, filterLower) {
			continue
		}

		filtered = append(filtered, entity)
	}

	return filtered
}
