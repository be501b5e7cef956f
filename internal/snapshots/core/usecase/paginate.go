package usecase

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"

	"usage-insights-service/internal/snapshots/core/domain"
)

// listKeys are the object properties checked, in order, for the list to page
// when the payload is an object. Failing those, the first array property is
// used.
var listKeys = []string{"data", "rows", "items"}

func paginate(payload any, p domain.PageParams) (any, error) {
	if p.IsZero() && isList(payload) {
		return payload, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot payload: %w", err)
	}

	doc := gjson.ParseBytes(raw)
	var list []gjson.Result
	switch {
	case doc.IsArray():
		if p.IsZero() {
			return payload, nil
		}
		list = doc.Array()
	case doc.IsObject():
		prop, ok := listProperty(doc)
		if !ok {
			return payload, nil
		}
		list = prop.Array()
	default:
		return payload, nil
	}

	if p.SortKey != "" {
		desc := p.SortOrder == domain.SortDesc
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i].Get(p.SortKey), list[j].Get(p.SortKey)
			if desc {
				return compareValues(b, a) < 0
			}
			return compareValues(a, b) < 0
		})
	}

	total := len(list)
	skip := 0
	if p.Skip != nil {
		skip = min(max(*p.Skip, 0), total)
	}
	limit := total
	if p.Limit != nil {
		limit = *p.Limit
	}
	end := min(skip+max(limit, 0), total)

	data := make([]json.RawMessage, 0, end-skip)
	for _, item := range list[skip:end] {
		data = append(data, json.RawMessage(item.Raw))
	}

	return domain.Page{
		Data: data,
		Pagination: domain.Pagination{
			Total: total,
			Skip:  skip,
			Limit: limit,
		},
	}, nil
}

// isList reports whether payload is a plain Go list that encodes as a JSON
// array. Nil slices, byte slices and types with their own encoding are left
// to the general path.
func isList(payload any) bool {
	if _, ok := payload.(json.Marshaler); ok {
		return false
	}
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Array:
		return true
	case reflect.Slice:
		return !v.IsNil() && v.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

func listProperty(doc gjson.Result) (gjson.Result, bool) {
	for _, k := range listKeys {
		if v := doc.Get(k); v.IsArray() {
			return v, true
		}
	}

	var found gjson.Result
	doc.ForEach(func(_, v gjson.Result) bool {
		if v.IsArray() {
			found = v
			return false
		}
		return true
	})
	return found, found.IsArray()
}

// compareValues compares numerically when both values are numeric and as
// strings otherwise.
func compareValues(a, b gjson.Result) int {
	if x, ok := numeric(a); ok {
		if y, ok := numeric(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			default:
				return 0
			}
		}
	}

	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func numeric(v gjson.Result) (float64, bool) {
	switch v.Type {
	case gjson.Number:
		return v.Num, true
	case gjson.String:
		f, err := strconv.ParseFloat(v.Str, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
