package debugui

import (
	"reflect"

	"github.com/cushmily/ecs"
)

var entityType = reflect.TypeOf(ecs.Entity(0))

// fieldInfo carries the per-field metadata the inspector needs to draw an
// editor: where the field sits in its struct and the two shapes it treats
// specially (pointers are dereferenced, ecs.Entity values become links).
type fieldInfo struct {
	Name      string
	Index     int
	IsPointer bool
	IsEntity  bool
}

// fieldCache memoizes exported-field metadata per component type so the
// inspector does not walk struct types every frame. The debug UI runs on the
// game goroutine, single-threaded like the world it observes.
var fieldCache = map[reflect.Type][]fieldInfo{}

func cachedFields(t reflect.Type) []fieldInfo {
	if fields, ok := fieldCache[t]; ok {
		return fields
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, fieldInfo{
				Name:      field.Name,
				Index:     i,
				IsPointer: isPointer,
				IsEntity:  fieldType == entityType,
			})
		}
	}

	fieldCache[t] = fields
	return fields
}
