package bindology

import (
	"fmt"
	"reflect"

	"github.com/viant/bindology/accessor"
	"github.com/viant/bindology/signal"
	"github.com/ygrebnov/errorc"
)

var signalType = reflect.TypeOf((*signal.Signal)(nil))

// resolveAccess resolves the value accessor of one endpoint: an explicit pair,
// a method pair, a field path, or the owner's conventional accessor.
func resolveAccess(endpoint string, owner interface{}, options *endpointOptions) (accessor.Accessor, error) {
	if options.access != nil {
		return options.access, nil
	}
	var result accessor.Accessor
	var err error
	switch {
	case options.getterName != "" || options.setterName != "":
		result, err = accessor.ForMethods(owner, options.getterName, options.setterName)
	case options.fieldPath != "":
		result, err = accessor.ForName(owner, options.fieldPath)
	default:
		result, err = accessor.Resolve(owner)
	}
	if err != nil {
		return nil, errorc.With(ErrConfiguration,
			errorc.String(ErrorFieldEndpoint, endpoint),
			errorc.String(ErrorFieldOwnerType, fmt.Sprintf("%T", owner)),
			errorc.String(ErrorFieldCause, err.Error()))
	}
	return result, nil
}

// resolveSignal resolves the change notification source of one endpoint. A
// missing optional source yields nil; a named source that does not resolve is
// always a wiring error.
func resolveSignal(endpoint string, owner interface{}, options *endpointOptions, required bool) (*signal.Signal, error) {
	if options.signal != nil {
		return options.signal, nil
	}
	if options.signalName != "" {
		return lookupSignal(endpoint, owner, options.signalName)
	}
	if notifier, ok := owner.(signal.Notifier); ok {
		if source := notifier.Changed(); source != nil {
			return source, nil
		}
	}
	if !required {
		return nil, nil
	}
	return nil, errorc.With(ErrSignalWiring,
		errorc.String(ErrorFieldEndpoint, endpoint),
		errorc.String(ErrorFieldOwnerType, fmt.Sprintf("%T", owner)),
		errorc.String(ErrorFieldCause, "no change notification source"))
}

// lookupSignal resolves a named notification source: a zero argument method
// returning *signal.Signal, or a struct field of that type.
func lookupSignal(endpoint string, owner interface{}, name string) (*signal.Signal, error) {
	ownerValue := reflect.ValueOf(owner)
	for _, candidate := range []string{name, accessor.Normalize(name)} {
		if method := ownerValue.MethodByName(candidate); method.IsValid() {
			mType := method.Type()
			if mType.NumIn() != 0 || mType.NumOut() != 1 || mType.Out(0) != signalType {
				continue
			}
			if source, ok := method.Call(nil)[0].Interface().(*signal.Signal); ok && source != nil {
				return source, nil
			}
		}
		if ownerValue.Kind() == reflect.Ptr && ownerValue.Elem().Kind() == reflect.Struct {
			field := ownerValue.Elem().FieldByName(candidate)
			if field.IsValid() && field.Type() == signalType {
				if source, ok := field.Interface().(*signal.Signal); ok && source != nil {
					return source, nil
				}
			}
		}
	}
	return nil, errorc.With(ErrSignalWiring,
		errorc.String(ErrorFieldEndpoint, endpoint),
		errorc.String(ErrorFieldName, name),
		errorc.String(ErrorFieldOwnerType, fmt.Sprintf("%T", owner)))
}
