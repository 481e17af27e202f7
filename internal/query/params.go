// Package query builds the request descriptors used to fetch monitor data. A descriptor is
// both the fetch specification and the cache identity of a request, so parameter order is
// part of its value.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
)

// Param is one named request parameter. A nil Value means the parameter is unset.
type Param struct {
	Key   string
	Value any
}

// Params is an ordered parameter bag.
type Params []Param

// Get returns the value stored under key.
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}

// Keys lists parameter names in order.
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, param := range p {
		keys = append(keys, param.Key)
	}
	return keys
}

// MarshalJSON encodes the bag as a JSON object whose members keep bag order.
func (p Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, param := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(param.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(param.Value)
		if err != nil {
			return nil, fmt.Errorf("encode param %s: %w", param.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Values flattens the bag into URL query values for a transport. Unset parameters are
// skipped and map-valued parameters contribute their own entries.
func (p Params) Values() url.Values {
	values := url.Values{}
	for _, param := range p {
		addValue(values, param.Key, param.Value)
	}
	return values
}

func addValue(values url.Values, key string, value any) {
	switch v := value.(type) {
	case nil:
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			addValue(values, k, v[k])
		}
	case []string:
		for _, item := range v {
			values.Add(key, item)
		}
	case []any:
		for _, item := range v {
			addValue(values, key, item)
		}
	default:
		values.Add(key, fmt.Sprint(v))
	}
}
