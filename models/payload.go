package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Payload is an untyped JSON object as decoded from a request body.
type Payload = map[string]interface{}

func asPayload(data interface{}, kind string) (Payload, error) {
	fields, ok := data.(map[string]interface{})
	if !ok {
		return nil, NewDataValidationError("Invalid %s: body of request contained bad or no data", kind)
	}
	return fields, nil
}

func requireString(fields Payload, key, kind string) (string, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return "", NewDataValidationError("Invalid %s: missing %s", kind, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError("Invalid %s: %s must be a string", kind, key)
	}
	if strings.TrimSpace(s) == "" {
		return "", NewDataValidationError("Invalid %s: %s must not be empty", kind, key)
	}
	return s, nil
}

func requireFloat(fields Payload, key, kind string) (float64, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		return 0, NewDataValidationError("Invalid %s: missing %s", kind, key)
	}
	f, ok := toFloat(raw)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, NewDataValidationError("Invalid %s: %s must be a number", kind, key)
	}
	return f, nil
}

// toFloat accepts JSON numbers and numeric strings.
func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// withScope returns fields with key set to value when absent. A different
// string under key is rejected.
func withScope(fields Payload, key, value, kind string) (Payload, error) {
	raw, ok := fields[key]
	if !ok || raw == nil {
		scoped := make(Payload, len(fields)+1)
		for k, v := range fields {
			scoped[k] = v
		}
		scoped[key] = value
		return scoped, nil
	}
	if s, isString := raw.(string); isString && s != value {
		return nil, NewDataValidationError("Invalid %s: %s %s does not match %s", kind, key, s, value)
	}
	return fields, nil
}
