package accessor

import (
	"fmt"
	"reflect"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

type methodAccessor struct {
	getter reflect.Value
	setter reflect.Value
}

// ForMethods resolves an accessor backed by a getter/setter method pair of
// owner. The getter takes no arguments and returns a single value; the setter
// takes one argument and returns nothing or an error. Names given in another
// case format resolve to their UpperCamel form.
func ForMethods(owner interface{}, getter, setter string) (Accessor, error) {
	if owner == nil {
		return nil, fmt.Errorf("accessor: owner was nil")
	}
	if getter == "" || setter == "" {
		return nil, fmt.Errorf("accessor: getter and setter are required")
	}
	ownerValue := reflect.ValueOf(owner)
	get := methodByName(ownerValue, getter)
	if !get.IsValid() {
		return nil, fmt.Errorf("accessor: unknown method %v on %T", getter, owner)
	}
	if mType := get.Type(); mType.NumIn() != 0 || mType.NumOut() != 1 {
		return nil, fmt.Errorf("accessor: method %v on %T is not a getter", getter, owner)
	}
	set := methodByName(ownerValue, setter)
	if !set.IsValid() {
		return nil, fmt.Errorf("accessor: unknown method %v on %T", setter, owner)
	}
	if mType := set.Type(); mType.NumIn() != 1 || mType.NumOut() > 1 || (mType.NumOut() == 1 && mType.Out(0) != errType) {
		return nil, fmt.Errorf("accessor: method %v on %T is not a setter", setter, owner)
	}
	return &methodAccessor{getter: get, setter: set}, nil
}

func methodByName(owner reflect.Value, name string) reflect.Value {
	if method := owner.MethodByName(name); method.IsValid() {
		return method
	}
	return owner.MethodByName(Normalize(name))
}

func (a *methodAccessor) Value() interface{} {
	out := a.getter.Call(nil)
	return out[0].Interface()
}

func (a *methodAccessor) SetValue(value interface{}) error {
	inType := a.setter.Type().In(0)
	var in reflect.Value
	if value == nil {
		in = reflect.Zero(inType)
	} else {
		in = reflect.ValueOf(value)
		if in.Type() != inType {
			if !isConvertible(in.Type(), inType) {
				return fmt.Errorf("accessor: cannot pass %T to %v", value, inType)
			}
			in = in.Convert(inType)
		}
	}
	out := a.setter.Call([]reflect.Value{in})
	if len(out) == 1 {
		if err, ok := out[0].Interface().(error); ok && err != nil {
			return err
		}
	}
	return nil
}
