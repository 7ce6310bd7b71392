// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It exposes the world's entities, masks, filters and timings as dockable panels driven by
// ECS components and a render system.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/cushmily/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state. Game systems read
// it to ignore mouse or keyboard input that ImGui is consuming.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem renders every ImguiItem and refreshes ImguiInputState
// components. Register it so it runs between the backend's BeginFrame and
// EndFrame calls.
type ImguiSystem struct {
	Items ecs.Query[struct{ *ImguiItem }]
	States ecs.Query[struct {
		*ImguiInputState
	}]
}

func (s *ImguiSystem) Run() {
	io := imgui.CurrentIO()
	for _, st := range s.States.Iter() {
		st.ImguiInputState.WantCaptureMouse = io.WantCaptureMouse()
		st.ImguiInputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items.Iter() {
		if item.ImguiItem.Render != nil {
			item.ImguiItem.Render()
		}
	}
}
