// Package codec provides JSON round-trip helpers that restore typed
// behavior to parsed data.
//
// ToJSON is a pass-through over the standard JSON encoding. FromJSON
// decodes into a concrete target type, so the result carries that type's
// full method set rather than being a generic map:
//
//	import "github.com/tonKristall/core-js-101/pkg/codec"
//
//	text, _ := codec.ToJSON(geometry.NewRectangle(10, 20))
//	r, err := codec.FromJSON[geometry.Rectangle](text)
//	if err != nil {
//		return err
//	}
//	area := r.Area()
//
// Only JSON-representable fields survive the round trip; unexported fields
// and non-JSON types follow the rules of encoding/json.
package codec
