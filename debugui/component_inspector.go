package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/cushmily/ecs"
)

func NewComponentInspector() ComponentInspector {
	return ComponentInspector{}
}

// Render shows the selected entity's components with editable fields. Edits
// write straight through the stored instances. Clicking a field of type
// ecs.Entity returns that entity so the caller can re-focus the browser.
func (ci *ComponentInspector) Render(w *ecs.World, selected ecs.Entity, hasSelection bool) *ecs.Entity {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	ci.selected = selected
	ci.hasSelection = hasSelection

	if !ci.hasSelection {
		imgui.Text("No entity selected")
		imgui.End()
		return nil
	}

	components, err := w.ComponentsOf(ci.selected)
	if err != nil {
		imgui.Text(fmt.Sprintf("Entity %d is gone: %v", ci.selected, err))
		imgui.End()
		return nil
	}

	mask, _ := w.MaskOf(ci.selected)
	imgui.Text(fmt.Sprintf("Entity ID: %d", ci.selected))
	imgui.Text(fmt.Sprintf("Mask: %s", mask.String()))
	imgui.Separator()

	var picked *ecs.Entity
	for _, component := range components {
		compType := reflect.TypeOf(component).Elem()
		if imgui.TreeNodeStr(compType.String()) {
			if p := ci.renderComponent(component, compType); p != nil {
				picked = p
			}
			imgui.TreePop()
		}
	}

	imgui.End()
	return picked
}

func (ci *ComponentInspector) renderComponent(component any, compType reflect.Type) *ecs.Entity {
	val := reflect.ValueOf(component).Elem()

	if compType.Kind() != reflect.Struct {
		return ci.renderValue("value", val, fieldInfo{IsEntity: compType == entityType})
	}

	var picked *ecs.Entity
	fields := cachedFields(compType)
	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		if p := ci.renderValue(field.Name, fieldVal, field); p != nil {
			picked = p
		}
	}
	return picked
}

func (ci *ComponentInspector) renderValue(name string, val reflect.Value, field fieldInfo) *ecs.Entity {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return nil
	}

	if field.IsEntity {
		target := ecs.Entity(val.Int())
		label := fmt.Sprintf("%s: entity %d##%s", name, target, name)
		if imgui.SelectableBoolV(label, false, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0)) {
			return &target
		}
		return nil
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		var picked *ecs.Entity
		if imgui.TreeNodeStr(name) {
			nestedFields := cachedFields(val.Type())
			for _, nf := range nestedFields {
				nestedVal := val.Field(nf.Index)
				if nf.IsPointer {
					if nestedVal.IsNil() {
						imgui.Text(fmt.Sprintf("%s: nil", nf.Name))
						continue
					}
					nestedVal = nestedVal.Elem()
				}
				if p := ci.renderValue(nf.Name, nestedVal, nf); p != nil {
					picked = p
				}
			}
			imgui.TreePop()
		}
		return picked

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}

	return nil
}
