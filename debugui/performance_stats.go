package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/cushmily/ecs"
)

func NewPerformanceStats(historyFrames int) PerformanceStats {
	return PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Render plots the frame-time history and summarizes the world's storage
// counters. Pass the SystemGroup to include per-system timings, or nil.
func (ps *PerformanceStats) Render(w *ecs.World, g *ecs.SystemGroup, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	stats := w.CollectStats()

	imgui.Text(fmt.Sprintf("Live Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Reserved Slots: %d", stats.ReservedCount))
	imgui.Text(fmt.Sprintf("Component Types: %d", stats.TypeCount))
	imgui.Text(fmt.Sprintf("Queued Updates: %d", stats.QueueDepth))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Filter Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("FilterStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, fs := range stats.Filters {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(strings.Join(fs.Components, ", "))
				imgui.TableNextColumn()
				if fs.ForEvents {
					imgui.Text("event")
				} else {
					imgui.Text("update")
				}
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", fs.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Pool Details") {
		for _, pool := range stats.Pools {
			imgui.BulletText(fmt.Sprintf("%s: %d free", pool.Type, pool.FreeCount))
		}
		imgui.TreePop()
	}

	if g != nil {
		if imgui.TreeNodeStr("System Timings") {
			const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
			if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
				imgui.TableSetupColumn("System")
				imgui.TableSetupColumn("Runs")
				imgui.TableSetupColumn("Avg")
				imgui.TableSetupColumn("Last")
				imgui.TableHeadersRow()

				for _, sys := range g.GetStats().Systems {
					imgui.TableNextRow()
					imgui.TableNextColumn()
					name := sys.Name
					if !sys.Enabled {
						name += " (disabled)"
					}
					imgui.Text(name)
					imgui.TableNextColumn()
					imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
					imgui.TableNextColumn()
					imgui.Text(sys.AvgDuration.String())
					imgui.TableNextColumn()
					imgui.Text(sys.LastDuration.String())
				}

				imgui.EndTable()
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

// FrameTimer measures wall-clock time between frames for the stats panel.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
