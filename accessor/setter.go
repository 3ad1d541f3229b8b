package accessor

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/viant/xunsafe"
)

type setter func(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error

// setFieldValue writes src into field, coercing between the common widget and
// model value kinds; exact type matches bypass the coercion table.
func setFieldValue(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	if src == nil {
		field.SetValue(holder, reflect.Zero(field.Type).Interface())
		return nil
	}
	srcType := reflect.TypeOf(src)
	if srcType == field.Type {
		field.SetValue(holder, src)
		return nil
	}
	if aSetter := lookupSetter(srcType, field.Type); aSetter != nil {
		return aSetter(src, field, holder)
	}
	if isConvertible(srcType, field.Type) {
		field.SetValue(holder, reflect.ValueOf(src).Convert(field.Type).Interface())
		return nil
	}
	return fmt.Errorf("accessor: cannot assign %v to %v field %v", srcType, field.Type, field.Name)
}

func lookupSetter(srcType, destType reflect.Type) setter {
	switch destType.Kind() {
	case reflect.Int:
		switch srcType.Kind() {
		case reflect.Int:
			return intToInt
		case reflect.Float64:
			return float64ToInt
		case reflect.Float32:
			return float32ToInt
		case reflect.String:
			return stringToInt
		}
	case reflect.Float64:
		switch srcType.Kind() {
		case reflect.Int:
			return intToFloat64
		case reflect.Float32:
			return float32ToFloat64
		case reflect.Float64:
			return float64ToFloat64
		case reflect.String:
			return stringToFloat64
		}
	case reflect.String:
		switch srcType.Kind() {
		case reflect.String:
			return stringToString
		case reflect.Int:
			return intToString
		case reflect.Float64:
			return float64ToString
		case reflect.Bool:
			return boolToString
		}
	case reflect.Bool:
		switch srcType.Kind() {
		case reflect.Bool:
			return boolToBool
		case reflect.String:
			return stringToBool
		}
	case reflect.Interface:
		if destType.NumMethod() == 0 {
			return valueToInterface
		}
	}
	return nil
}

func intToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetInt(holder, *(*int)(ptr))
	return nil
}

func float64ToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetInt(holder, int(*(*float64)(ptr)))
	return nil
}

func float32ToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetInt(holder, int(*(*float32)(ptr)))
	return nil
}

func stringToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	value, err := strconv.Atoi(*(*string)(ptr))
	if err != nil {
		return err
	}
	field.SetInt(holder, value)
	return nil
}

func intToFloat64(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetFloat64(holder, float64(*(*int)(ptr)))
	return nil
}

func float32ToFloat64(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetFloat64(holder, float64(*(*float32)(ptr)))
	return nil
}

func float64ToFloat64(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetFloat64(holder, *(*float64)(ptr))
	return nil
}

func stringToFloat64(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	value, err := strconv.ParseFloat(*(*string)(ptr), 64)
	if err != nil {
		return err
	}
	field.SetFloat64(holder, value)
	return nil
}

func stringToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetString(holder, *(*string)(ptr))
	return nil
}

func intToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetString(holder, strconv.Itoa(*(*int)(ptr)))
	return nil
}

func float64ToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetString(holder, strconv.FormatFloat(*(*float64)(ptr), 'f', -1, 64))
	return nil
}

func boolToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetString(holder, strconv.FormatBool(*(*bool)(ptr)))
	return nil
}

func boolToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	field.SetBool(holder, *(*bool)(ptr))
	return nil
}

func stringToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	ptr := xunsafe.AsPointer(src)
	value, err := strconv.ParseBool(*(*string)(ptr))
	if err != nil {
		return err
	}
	field.SetBool(holder, value)
	return nil
}

func valueToInterface(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, src)
	return nil
}
