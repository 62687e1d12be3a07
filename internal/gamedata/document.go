// internal/gamedata/document.go
package gamedata

import (
	"encoding/json"
	"math"
)

// Document is a loosely typed key/value tree used for game data and save files.
// Accessors return ok=false when the key is absent or holds an incompatible value,
// so callers can keep their current value instead of failing.
type Document map[string]any

// New returns an empty document.
func New() Document {
	return Document{}
}

// HasKey reports whether key is present.
func (d Document) HasKey(key string) bool {
	_, ok := d[key]
	return ok
}

// Set stores v under key.
func (d Document) Set(key string, v any) {
	d[key] = v
}

func (d Document) String(key string) (string, bool) {
	s, ok := d[key].(string)
	return s, ok
}

// Int returns the value truncated toward zero, whatever numeric width it was decoded with.
func (d Document) Int(key string) (int, bool) {
	f, ok := toFloat(d[key])
	if !ok {
		return 0, false
	}
	return int(f), true
}

func (d Document) Float(key string) (float64, bool) {
	return toFloat(d[key])
}

func (d Document) Bool(key string) (bool, bool) {
	b, ok := d[key].(bool)
	return b, ok
}

// Object returns a nested object.
func (d Document) Object(key string) (Document, bool) {
	return toDocument(d[key])
}

// Array returns a nested array of objects. Elements that are not objects are skipped.
func (d Document) Array(key string) ([]Document, bool) {
	switch v := d[key].(type) {
	case []Document:
		return v, true
	case []map[string]any:
		out := make([]Document, 0, len(v))
		for _, m := range v {
			out = append(out, Document(m))
		}
		return out, true
	case []any:
		out := make([]Document, 0, len(v))
		for _, item := range v {
			if doc, ok := toDocument(item); ok {
				out = append(out, doc)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

func toDocument(v any) (Document, bool) {
	switch m := v.(type) {
	case Document:
		return m, true
	case map[string]any:
		return Document(m), true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
