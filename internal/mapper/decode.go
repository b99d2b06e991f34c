package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Helpers for reading JSON columns one field at a time. Anything that does
// not have the expected shape yields the zero value for that field only.

func decodeObject(raw datatypes.JSON) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

func decodeArray(raw datatypes.JSON) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var out []json.RawMessage
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func decodeStrings(raw datatypes.JSON) []string {
	out := []string{}
	for _, item := range decodeArray(raw) {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
		}
	}
	return out
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func boolField(m map[string]any, key string) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return false
}

func objectField(m map[string]any, key string) (map[string]any, bool) {
	obj, ok := m[key].(map[string]any)
	return obj, ok
}

func encode(v any, empty string) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return datatypes.JSON(empty), nil
	}
	return datatypes.JSON(raw), nil
}
