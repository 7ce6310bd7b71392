package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/cushmily/ecs"
)

type maskProberCache struct {
	typeNames     []string
	lastTypeCount int
}

func NewMaskProber() MaskProber {
	return MaskProber{
		selectedTypes: make(map[ecs.ComponentID]bool),
		cache: &maskProberCache{
			lastTypeCount: -1,
		},
	}
}

// Render lets the user tick component types and shows how many live entities
// carry all of them, plus any registered filter that already matches the
// selection.
func (mp *MaskProber) Render(w *ecs.World) {
	if !imgui.BeginV("Mask Prober", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	mp.rebuildCacheIfNeeded(w)

	imgui.Text("Select Component Types:")
	imgui.Separator()

	if imgui.Button("Clear All") {
		mp.selectedTypes = make(map[ecs.ComponentID]bool)
	}

	for id, name := range mp.cache.typeNames {
		selected := mp.selectedTypes[ecs.ComponentID(id)]
		if imgui.Checkbox(name, &selected) {
			if selected {
				mp.selectedTypes[ecs.ComponentID(id)] = true
			} else {
				delete(mp.selectedTypes, ecs.ComponentID(id))
			}
		}
	}

	imgui.Separator()

	if len(mp.selectedTypes) == 0 {
		imgui.Text("No component types selected")
		imgui.End()
		return
	}

	var probe ecs.Mask
	for id := range mp.selectedTypes {
		probe.Set(id)
	}

	matching := 0
	for e := range w.Entities() {
		mask, err := w.MaskOf(e)
		if err != nil {
			continue
		}
		if mask.Contains(probe) {
			matching++
		}
	}

	imgui.Text(fmt.Sprintf("Matching Entities: %d", matching))

	coveringFilters := 0
	for _, f := range w.Filters() {
		if f.Mask().Contains(probe) || probe.Contains(f.Mask()) {
			coveringFilters++
		}
	}
	imgui.Text(fmt.Sprintf("Related Filters: %d", coveringFilters))

	if imgui.TreeNodeStr("Filter Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ProbeFilterTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Mask")
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, f := range w.Filters() {
				if !f.Mask().Contains(probe) && !probe.Contains(f.Mask()) {
					continue
				}
				imgui.TableNextRow()

				imgui.TableSetColumnIndex(0)
				imgui.Text(f.Mask().String())

				imgui.TableSetColumnIndex(1)
				if f.ForEvents() {
					imgui.Text("event")
				} else {
					imgui.Text("update")
				}

				imgui.TableSetColumnIndex(2)
				imgui.Text(fmt.Sprintf("%d", f.Count()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (mp *MaskProber) rebuildCacheIfNeeded(w *ecs.World) {
	if mp.cache.lastTypeCount == w.TypeCount() {
		return
	}

	count := w.TypeCount()
	mp.cache.typeNames = make([]string, count)
	for id := 0; id < count; id++ {
		mp.cache.typeNames[id] = w.TypeOf(ecs.ComponentID(id)).String()
	}
	mp.cache.lastTypeCount = count
}
