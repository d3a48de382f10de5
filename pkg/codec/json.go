package codec

import "encoding/json"

// ToJSON serializes a value to its JSON text form.
func ToJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses JSON text and produces a value of the target type, with
// all parsed fields copied onto a fresh instance. The target type supplies
// the method set of the result, so behavior lost during serialization is
// reattached by decoding into the concrete type.
func FromJSON[T any](data string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return v, err
	}
	return v, nil
}
