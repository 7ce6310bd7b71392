package debugui

import "github.com/cushmily/ecs"

// SpawnDebugUI creates one entity carrying every debug panel plus an
// ImguiItem that renders them, wired so entity references clicked in the
// inspector re-focus the browser. Register an ImguiSystem in the group to
// draw the panels; g may be nil to skip system timings.
func SpawnDebugUI(w *ecs.World, g *ecs.SystemGroup) (ecs.Entity, error) {
	e := w.CreateEntity()

	browser, err := ecs.Add[EntityBrowser](w, e)
	if err != nil {
		return 0, err
	}
	*browser = NewEntityBrowser(100)

	inspector, err := ecs.Add[ComponentInspector](w, e)
	if err != nil {
		return 0, err
	}
	*inspector = NewComponentInspector()

	viewer, err := ecs.Add[FilterViewer](w, e)
	if err != nil {
		return 0, err
	}
	*viewer = NewFilterViewer()

	prober, err := ecs.Add[MaskProber](w, e)
	if err != nil {
		return 0, err
	}
	*prober = NewMaskProber()

	stats, err := ecs.Add[PerformanceStats](w, e)
	if err != nil {
		return 0, err
	}
	*stats = NewPerformanceStats(120)

	if _, err := ecs.Add[ImguiInputState](w, e); err != nil {
		return 0, err
	}

	item, err := ecs.Add[ImguiItem](w, e)
	if err != nil {
		return 0, err
	}
	timer := NewFrameTimer()
	item.Render = func() {
		browser.Render(w)
		selected, ok := browser.Selected()
		if picked := inspector.Render(w, selected, ok); picked != nil {
			browser.Select(*picked)
		}
		viewer.Render(w)
		prober.Render(w)
		stats.Render(w, g, timer.GetDeltaTime())
	}

	return e, nil
}
