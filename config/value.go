package config

import (
	"fmt"
	"math"
	"reflect"
)

// normalizeMapping converts every nested mapping under data to map[string]any in place.
func normalizeMapping(data map[string]any) map[string]any {
	for key, value := range data {
		data[key] = normalizeValue(value)
	}

	return data
}

// normalizeValue rewrites mapping types to map[string]any, stringifying keys,
// and walks lists. uint64 becomes int64 when it fits and float64 otherwise;
// other scalars are returned untouched.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case uint64:
		if typed <= math.MaxInt64 {
			return int64(typed)
		}

		return float64(typed)
	case map[string]any:
		return normalizeMapping(typed)
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[fmt.Sprint(key)] = normalizeValue(child)
		}

		return out
	case []any:
		for i, child := range typed {
			typed[i] = normalizeValue(child)
		}

		return typed
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		out := make(map[string]any, rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalizeValue(iter.Value().Interface())
		}

		return out
	}

	return value
}

// cloneValue deep-copies mappings and slices of any element type; other values are shared.
func cloneValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, child := range typed {
			out[key] = cloneValue(child)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, child := range typed {
			out[i] = cloneValue(child)
		}

		return out
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return value
	}

	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())

	for i := range rv.Len() {
		child := cloneValue(rv.Index(i).Interface())
		if child != nil {
			out.Index(i).Set(reflect.ValueOf(child))
		}
	}

	return out.Interface()
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
