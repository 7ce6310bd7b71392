package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/cushmily/ecs"
)

// FilterInfo is one row of the filter table.
type FilterInfo struct {
	Mask           ecs.Mask
	ComponentTypes []string
	ForEvents      bool
	EntityCount    int
}

type filterViewerCache struct {
	filters []FilterInfo
}

func NewFilterViewer() FilterViewer {
	return FilterViewer{
		cache:         &filterViewerCache{},
		sortColumn:    3,
		sortAscending: false,
	}
}

func (fv *FilterViewer) Render(w *ecs.World) {
	if !imgui.BeginV("Filter Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	fv.rebuildCache(w)

	maxEntityCount := 0
	for _, f := range fv.cache.filters {
		if f.EntityCount > maxEntityCount {
			maxEntityCount = f.EntityCount
		}
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("FilterTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			fv.sortColumn = int(spec.ColumnIndex())
			fv.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			fv.sortFilters()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, f := range fv.cache.filters {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(f.Mask.String())

			imgui.TableNextColumn()
			imgui.Text(strings.Join(f.ComponentTypes, ", "))

			imgui.TableNextColumn()
			if f.ForEvents {
				imgui.Text("event")
			} else {
				imgui.Text("update")
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", f.EntityCount))

			if maxEntityCount > 0 {
				barWidth := float32(f.EntityCount) / float32(maxEntityCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

// rebuildCache refreshes every frame: filter membership moves with each
// flush, and the filter list itself rarely grows after startup.
func (fv *FilterViewer) rebuildCache(w *ecs.World) {
	filters := w.Filters()
	rebuilt := make([]FilterInfo, 0, len(filters))

	for _, f := range filters {
		mask := f.Mask()
		componentTypes := make([]string, 0, mask.Count())
		for id := range mask.Bits() {
			componentTypes = append(componentTypes, w.TypeOf(id).String())
		}
		rebuilt = append(rebuilt, FilterInfo{
			Mask:           mask,
			ComponentTypes: componentTypes,
			ForEvents:      f.ForEvents(),
			EntityCount:    f.Count(),
		})
	}

	fv.cache.filters = rebuilt
	fv.sortFilters()
}

func (fv *FilterViewer) sortFilters() {
	sort.Slice(fv.cache.filters, func(i, j int) bool {
		a, b := fv.cache.filters[i], fv.cache.filters[j]
		var less bool

		switch fv.sortColumn {
		case 0:
			less = a.Mask.String() < b.Mask.String()
		case 1:
			less = strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		case 2:
			less = !a.ForEvents && b.ForEvents
		case 3:
			less = a.EntityCount < b.EntityCount
		default:
			less = a.EntityCount < b.EntityCount
		}

		if !fv.sortAscending {
			return !less
		}
		return less
	})
}
