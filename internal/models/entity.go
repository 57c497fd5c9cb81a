package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Entity is a provider object whose fields are all optional. Reads go
// through Lookup so a missing or mistyped field is never an error.
type Entity map[string]interface{}

// DecodeJSON decodes provider JSON keeping numbers as json.Number, so large
// identifiers survive a round trip untouched.
func DecodeJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// AsEntity converts a decoded JSON value to an Entity when it is an object.
func AsEntity(v interface{}) (Entity, bool) {
	switch obj := v.(type) {
	case map[string]interface{}:
		return Entity(obj), true
	case Entity:
		return obj, true
	}
	return nil, false
}

// Lookup follows a dotted path such as "urn.value".
func (e Entity) Lookup(path string) (interface{}, bool) {
	if e == nil {
		return nil, false
	}

	var current interface{} = e
	for _, key := range strings.Split(path, ".") {
		obj, ok := AsEntity(current)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String returns the scalar at path as a string, or "" when it is absent,
// falsy or not a scalar.
func (e Entity) String(path string) string {
	v, _ := e.Lookup(path)
	s, _ := ScalarString(v)
	return s
}

// Array returns the array at path, or nil when absent or not an array.
func (e Entity) Array(path string) []interface{} {
	v, _ := e.Lookup(path)
	arr, _ := v.([]interface{})
	return arr
}

// ScalarString renders truthy scalars as strings. Empty strings, zero
// numbers, false, null, objects and arrays report false.
func ScalarString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, val != ""
	case json.Number:
		if f, err := val.Float64(); err == nil && f == 0 {
			return "", false
		}
		return val.String(), true
	case float64:
		if val == 0 {
			return "", false
		}
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		if val == 0 {
			return "", false
		}
		return strconv.Itoa(val), true
	case bool:
		if !val {
			return "", false
		}
		return "true", true
	}
	return "", false
}

// Truthy mirrors loose truthiness for any decoded JSON value.
func Truthy(v interface{}) bool {
	switch v.(type) {
	case nil:
		return false
	case map[string]interface{}, Entity, []interface{}:
		return true
	}
	_, ok := ScalarString(v)
	return ok
}
