package accessor

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	fieldPath struct {
		field *xunsafe.Field
		slice *xunsafe.Slice
		index int
		isPtr bool
	}

	fieldAccessor struct {
		holder unsafe.Pointer
		paths  []*fieldPath
	}
)

// ForField resolves an accessor for a struct field of owner, which has to be
// a struct pointer. The path may be nested and index slice items, i.e.
// Readout.Channels[2].Gain; written values are coerced to the field type.
func ForField(owner interface{}, aPath string) (Accessor, error) {
	if owner == nil {
		return nil, fmt.Errorf("accessor: owner was nil")
	}
	segments, err := parsePath(aPath)
	if err != nil {
		return nil, err
	}
	ownerType := reflect.TypeOf(owner)
	if ownerType.Kind() != reflect.Ptr || ownerType.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("accessor: owner %T was not a struct pointer", owner)
	}
	holderType := ownerType.Elem()
	var paths []*fieldPath
	for _, seg := range segments {
		if holderType.Kind() != reflect.Struct {
			return nil, fmt.Errorf("accessor: %v of path %v is not a struct", holderType, aPath)
		}
		field := fieldByName(holderType, seg.name)
		if field == nil {
			return nil, fmt.Errorf("accessor: unknown field %v on %v", seg.name, holderType)
		}
		item := &fieldPath{field: field, index: seg.index}
		fieldType := field.Type
		if seg.hasIndex {
			if fieldType.Kind() != reflect.Slice {
				return nil, fmt.Errorf("accessor: field %v of path %v is not a slice", seg.name, aPath)
			}
			item.slice = xunsafe.NewSlice(fieldType)
			fieldType = fieldType.Elem()
		}
		if fieldType.Kind() == reflect.Ptr {
			item.isPtr = true
			fieldType = fieldType.Elem()
		}
		paths = append(paths, item)
		holderType = fieldType
	}
	return &fieldAccessor{holder: xunsafe.AsPointer(owner), paths: paths}, nil
}

func fieldByName(owner reflect.Type, name string) *xunsafe.Field {
	xStruct := xunsafe.NewStruct(owner)
	normalized := Normalize(name)
	for i, field := range xStruct.Fields {
		if field.Name == name || field.Name == normalized {
			return &xStruct.Fields[i]
		}
	}
	return nil
}

func (a *fieldAccessor) upstream() (unsafe.Pointer, *fieldPath, error) {
	ptr := a.holder
	count := len(a.paths)
	for i := 0; i < count-1; i++ {
		aPath := a.paths[i]
		ptr = aPath.field.Pointer(ptr)
		if aPath.slice != nil {
			length := aPath.slice.Len(ptr)
			if aPath.index < 0 || aPath.index >= length {
				return nil, nil, fmt.Errorf("accessor: index out of range: %v, len: %v", aPath.index, length)
			}
			ptr = aPath.slice.PointerAt(ptr, uintptr(aPath.index))
		}
		if aPath.isPtr {
			ptr = xunsafe.DerefPointer(ptr)
			if ptr == nil {
				return nil, nil, fmt.Errorf("accessor: nil pointer at %v", aPath.field.Name)
			}
		}
	}
	return ptr, a.paths[count-1], nil
}

// Value returns the current field value; unreachable paths yield nil
func (a *fieldAccessor) Value() interface{} {
	ptr, leaf, err := a.upstream()
	if err != nil {
		return nil
	}
	if leaf.slice != nil {
		slicePtr := leaf.field.Pointer(ptr)
		if leaf.index < 0 || leaf.index >= leaf.slice.Len(slicePtr) {
			return nil
		}
		return leaf.slice.ValueAt(slicePtr, leaf.index)
	}
	return leaf.field.Value(ptr)
}

// SetValue sets the field value, coercing value to the field type
func (a *fieldAccessor) SetValue(value interface{}) error {
	ptr, leaf, err := a.upstream()
	if err != nil {
		return err
	}
	if leaf.slice != nil {
		slicePtr := leaf.field.Pointer(ptr)
		length := leaf.slice.Len(slicePtr)
		if leaf.index < 0 || leaf.index >= length {
			return fmt.Errorf("accessor: index out of range: %v, len: %v", leaf.index, length)
		}
		coerced, err := coerce(value, leaf.slice.Type.Elem())
		if err != nil {
			return err
		}
		leaf.slice.SetValueAt(slicePtr, leaf.index, coerced)
		return nil
	}
	return setFieldValue(value, leaf.field, ptr)
}

func coerce(value interface{}, destType reflect.Type) (interface{}, error) {
	if value == nil {
		return reflect.Zero(destType).Interface(), nil
	}
	srcValue := reflect.ValueOf(value)
	if srcValue.Type() == destType {
		return value, nil
	}
	if !isConvertible(srcValue.Type(), destType) {
		return nil, fmt.Errorf("accessor: cannot assign %v to %v", srcValue.Type(), destType)
	}
	return srcValue.Convert(destType).Interface(), nil
}

func isConvertible(src, dest reflect.Type) bool {
	if !src.ConvertibleTo(dest) {
		return false
	}
	if dest.Kind() == reflect.String && src.Kind() != reflect.String {
		//rune conversion, not a value coercion
		return false
	}
	return true
}
