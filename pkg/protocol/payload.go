package protocol

import "strconv"

// String reads p[key] as a string. Numbers are formatted.
func String(p map[string]any, key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		if f, ok := Float(p, key); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return ""
	}
}

// Float reads p[key] as a number. JSON yields float64 while MessagePack
// yields sized integers, so every numeric kind is accepted, as are
// numeric strings from data attributes.
func Float(p map[string]any, key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int reads p[key] as an integer, truncating fractions.
func Int(p map[string]any, key string) (int, bool) {
	f, ok := Float(p, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool reads p[key] as a boolean. The strings "true" and "1" count as true.
func Bool(p map[string]any, key string) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		return v == "true" || v == "1"
	default:
		f, ok := Float(p, key)
		return ok && f != 0
	}
}

// Map reads p[key] as a nested object. MessagePack may decode keys as
// interface values, so those are converted.
func Map(p map[string]any, key string) map[string]any {
	switch v := p[key].(type) {
	case map[string]any:
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out
	default:
		return nil
	}
}
