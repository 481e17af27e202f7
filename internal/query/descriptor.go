package query

import (
	"encoding/json"
	"net/url"
)

// Page size and inclusion flag requested by every monitor list query. They are product
// policy and cannot be overridden by filters.
const (
	ListPageSize   = 20
	ListIncludeNew = true
)

// Descriptor is a request path with its ordered parameters.
type Descriptor struct {
	Path   string `json:"path"`
	Params Params `json:"params"`
}

// Key returns the cache identity of d: the JSON encoding of [path, params].
func (d Descriptor) Key() string {
	payload, err := json.Marshal([]any{d.Path, d.Params})
	if err != nil {
		// Only values that JSON cannot represent end up here; fall back to a key that
		// still separates descriptors by path and parameter names.
		fallback, _ := json.Marshal([]any{d.Path, d.Params.Keys()})
		return string(fallback)
	}
	return string(payload)
}

// Equal reports whether d and other identify the same request.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Key() == other.Key()
}

// Filters is the open parameter bag a monitor list view passes in.
type Filters map[string]any

// listFilterKeys are read from Filters by ListKey.
var listFilterKeys = []string{"query", "project", "environment", "owner", "cursor", "sort", "asc"}

// FiltersFromValues picks the list filters out of URL query values. Repeated keys, such
// as several projects, keep every value.
func FiltersFromValues(values url.Values) Filters {
	filters := make(Filters)
	for _, key := range listFilterKeys {
		raw, ok := values[key]
		if !ok || len(raw) == 0 {
			continue
		}
		if len(raw) == 1 {
			filters[key] = raw[0]
			continue
		}
		filters[key] = append([]string(nil), raw...)
	}
	return filters
}

// ListKey builds the descriptor for listing an organization's monitors. Absent filters
// stay in the bag as unset values so the key shape never changes. The slug is not
// validated.
func ListKey(orgSlug string, filters Filters) Descriptor {
	return Descriptor{
		Path: "/organizations/" + orgSlug + "/monitors/",
		Params: Params{
			{Key: "cursor", Value: filters["cursor"]},
			{Key: "query", Value: filters["query"]},
			{Key: "project", Value: filters["project"]},
			{Key: "environment", Value: filters["environment"]},
			{Key: "owner", Value: filters["owner"]},
			{Key: "includeNew", Value: ListIncludeNew},
			{Key: "per_page", Value: ListPageSize},
			{Key: "sort", Value: filters["sort"]},
			{Key: "asc", Value: filters["asc"]},
		},
	}
}

// DetailKey builds the descriptor for one monitor. q is forwarded unchanged, and an absent
// q stays as an unset query parameter.
func DetailKey(orgSlug, projectID, monitorSlug string, q map[string]any) Descriptor {
	var value any
	if q != nil {
		value = q
	}
	return Descriptor{
		Path:   "/projects/" + orgSlug + "/" + projectID + "/monitors/" + monitorSlug + "/",
		Params: Params{{Key: "query", Value: value}},
	}
}

// QueryFromValues turns URL query values into a detail query bag. Single values stay
// strings and repeated keys become string slices. No values yields nil.
func QueryFromValues(values url.Values) map[string]any {
	if len(values) == 0 {
		return nil
	}
	q := make(map[string]any, len(values))
	for key, raw := range values {
		if len(raw) == 1 {
			q[key] = raw[0]
		} else {
			q[key] = raw
		}
	}
	return q
}
