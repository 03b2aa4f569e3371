package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert performs a best-effort conversion of the input value into the type
// pointed to by outPtr.
//
// Values assignable to the destination, or pointers to such values, are
// copied directly; anything else takes a JSON marshal/unmarshal round-trip.
// A nil input leaves the destination untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv.Convert: outPtr cannot be nil")
	}
	v := reflect.ValueOf(outPtr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("conv.Convert: outPtr must be a non-nil pointer")
	}
	if in == nil {
		return nil
	}

	inVal := reflect.ValueOf(in)
	dest := v.Elem()
	if inVal.Type().AssignableTo(dest.Type()) {
		dest.Set(inVal)
		return nil
	}
	if inVal.Kind() == reflect.Ptr && !inVal.IsNil() && inVal.Elem().Type().AssignableTo(dest.Type()) {
		dest.Set(inVal.Elem())
		return nil
	}

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outPtr)
}

// ToMap converts an arbitrary input value into a map[string]interface{} using
// the same strategy as Convert.
func ToMap(in any) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := Convert(in, &m); err != nil {
		return nil, err
	}
	return m, nil
}
