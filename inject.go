package ecs

import (
	"reflect"
	"strings"
)

var worldPtrType = reflect.TypeOf((*World)(nil))

// injectSystemFields populates a system's dependency fields before it joins
// any lifecycle phase: *World fields receive the group's world, and Query and
// EventQuery fields are initialized against it. The system must be a pointer
// to a struct for its fields to be settable; anything else is left untouched.
func injectSystemFields(w *World, system any) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Type() == worldPtrType {
			field.Set(reflect.ValueOf(w))
			continue
		}

		if field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		if strings.HasPrefix(typeName, "Query[") || strings.HasPrefix(typeName, "EventQuery[") {
			initMethod := field.Addr().MethodByName("Init")
			if !initMethod.IsValid() {
				panic("Init method not found on query field: " + fieldType.Name)
			}
			initMethod.Call([]reflect.Value{
				reflect.ValueOf(w),
			})
		}
	}
}
