package templates

import (
	"reflect"
	"strings"
)

// Binding selects a value from an item by a dot-separated property path.
// Each segment resolves, in order: a niladic single-result method, an
// exported struct field, or a string-keyed map entry. Pointers and interface
// values are dereferenced along the way.
type Binding struct {
	Path string
}

// NewBinding returns a binding for path.
func NewBinding(path string) *Binding {
	return &Binding{Path: path}
}

// Eval resolves the binding against item. An empty path yields the item
// itself. The second result is false when any segment fails to resolve.
func (b *Binding) Eval(item any) (any, bool) {
	if b.Path == "" {
		return item, true
	}
	current := reflect.ValueOf(item)
	for _, segment := range strings.Split(b.Path, ".") {
		next, ok := resolveSegment(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	if !current.IsValid() || !current.CanInterface() {
		return nil, false
	}
	return current.Interface(), true
}

func resolveSegment(v reflect.Value, name string) (reflect.Value, bool) {
	if !v.IsValid() || name == "" {
		return reflect.Value{}, false
	}
	if m, ok := niladicMethod(v, name); ok {
		return m, true
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
		if m, ok := niladicMethod(v, name); ok {
			return m, true
		}
	}
	switch v.Kind() {
	case reflect.Struct:
		if !isExported(name) {
			return reflect.Value{}, false
		}
		f := v.FieldByName(name)
		if f.IsValid() {
			return f, true
		}
	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String {
			mv := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if mv.IsValid() {
				return mv, true
			}
		}
	}
	return reflect.Value{}, false
}

func niladicMethod(v reflect.Value, name string) (reflect.Value, bool) {
	if !isExported(name) {
		return reflect.Value{}, false
	}
	m := v.MethodByName(name)
	if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
		return m.Call(nil)[0], true
	}
	return reflect.Value{}, false
}

func isExported(name string) bool {
	return name[0] >= 'A' && name[0] <= 'Z'
}
