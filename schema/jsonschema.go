package schema

import (
	"encoding/json"
)

// JSONSchema renders the field as a JSON schema fragment.
func (f *Field) JSONSchema() map[string]any {
	s := map[string]any{"type": string(f.kind)}
	if f.kind == KindDecimal {
		s["type"] = []string{string(KindString), string(KindNumber)}
	}
	if f.description != "" {
		s["description"] = f.description
	}
	if len(f.enum) > 0 {
		s["enum"] = f.enum
	}
	if f.min != nil {
		s["minimum"] = *f.min
	}
	if f.max != nil {
		if f.exclMax {
			s["exclusiveMaximum"] = *f.max
		} else {
			s["maximum"] = *f.max
		}
	}
	if f.minLength > 0 {
		s["minLength"] = f.minLength
	}
	if f.hasDef {
		s["default"] = f.def
	}

	switch f.kind {
	case KindArray:
		if f.minItems > 0 {
			s["minItems"] = f.minItems
		}
		if f.hasMaxItems {
			s["maxItems"] = f.maxItems
		}
		if f.items != nil {
			s["items"] = f.items.JSONSchema()
		}
	case KindObject:
		props := make(map[string]any, len(f.properties))
		required := []string{}
		for _, p := range f.properties {
			props[p.name] = p.JSONSchema()
			if p.required {
				required = append(required, p.name)
			}
		}
		s["properties"] = props
		if len(required) > 0 {
			s["required"] = required
		}
		s["additionalProperties"] = false
	}
	return s
}

// RawJSONSchema encodes JSONSchema for transports that take raw bytes.
func (f *Field) RawJSONSchema() json.RawMessage {
	raw, err := json.Marshal(f.JSONSchema())
	if err != nil {
		// only plain maps, slices and scalars are produced above
		panic(err)
	}
	return raw
}
