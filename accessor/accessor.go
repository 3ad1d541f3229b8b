// Package accessor resolves read/write access to a single value owned by an
// external widget or model object: an explicit function pair, a struct field
// path or a getter/setter method pair located by name.
package accessor

import (
	"fmt"

	"github.com/viant/tagly/format/text"
)

// Accessor represents read/write access to one value of an external object.
// The object itself is borrowed, never owned.
type Accessor interface {
	Value() interface{}
	SetValue(value interface{}) error
}

// conventionalName locates the value endpoint when no accessor was supplied:
// a Value field, or a Value/SetValue method pair.
const conventionalName = "Value"

type funcs struct {
	get func() interface{}
	set func(value interface{}) error
}

func (f funcs) Value() interface{} {
	if f.get == nil {
		return nil
	}
	return f.get()
}

func (f funcs) SetValue(value interface{}) error {
	if f.set == nil {
		return fmt.Errorf("accessor: setter is not defined")
	}
	return f.set(value)
}

// Funcs builds an accessor from an explicit getter/setter capability pair.
func Funcs(get func() interface{}, set func(value interface{}) error) Accessor {
	return funcs{get: get, set: set}
}

// ForName resolves an accessor for the named attribute of owner: a struct
// field path first, then a Name/SetName method pair.
func ForName(owner interface{}, name string) (Accessor, error) {
	if owner == nil {
		return nil, fmt.Errorf("accessor: owner was nil")
	}
	if name == "" {
		return nil, fmt.Errorf("accessor: name was empty")
	}
	field, fieldErr := ForField(owner, name)
	if fieldErr == nil {
		return field, nil
	}
	getter := Normalize(name)
	methods, methodErr := ForMethods(owner, getter, "Set"+getter)
	if methodErr == nil {
		return methods, nil
	}
	return nil, fmt.Errorf("accessor: failed to resolve %v on %T: %v, %v", name, owner, fieldErr, methodErr)
}

// Resolve returns the conventional accessor of owner: the owner itself when
// it implements Accessor, otherwise its Value attribute.
func Resolve(owner interface{}) (Accessor, error) {
	if owner == nil {
		return nil, fmt.Errorf("accessor: owner was nil")
	}
	if accessor, ok := owner.(Accessor); ok {
		return accessor, nil
	}
	return ForName(owner, conventionalName)
}

// Normalize converts a supplied attribute name to the UpperCamel form used by
// exported Go identifiers, i.e. power_setpoint becomes PowerSetpoint.
func Normalize(name string) string {
	if name == "" {
		return name
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() || src == text.CaseFormatUpperCamel {
		return name
	}
	return src.Format(name, text.CaseFormatUpperCamel)
}
