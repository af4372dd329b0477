package main

import (
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/katalvlaran/lcskit/lcs"
)

// parseMatching decodes a matching given either as a two-row array
// [[f...],[g...]] or as an object {"f":[...],"g":[...]}.
// Row lengths and ordering are left to the validator.
func parseMatching(s string) (lcs.Matching, error) {
	var p fastjson.Parser
	v, err := p.Parse(s)
	if err != nil {
		return lcs.Matching{}, fmt.Errorf("cannot parse matching: %w", err)
	}

	var rows [][]int
	switch t := v.Type(); t {
	case fastjson.TypeArray:
		items, _ := v.Array()
		for i, item := range items {
			row, err := intRow(item)
			if err != nil {
				return lcs.Matching{}, fmt.Errorf("matching row %d: %w", i, err)
			}
			rows = append(rows, row)
		}
	case fastjson.TypeObject:
		for _, key := range []string{"f", "g"} {
			item := v.Get(key)
			if item == nil {
				return lcs.Matching{}, fmt.Errorf("matching: missing %q", key)
			}
			row, err := intRow(item)
			if err != nil {
				return lcs.Matching{}, fmt.Errorf("matching %q: %w", key, err)
			}
			rows = append(rows, row)
		}
	default:
		return lcs.Matching{}, fmt.Errorf("expecting json array or object for matching; got %s", t)
	}
	return lcs.MatchingFromRows(rows)
}

// intRow decodes a JSON array of integers.
func intRow(v *fastjson.Value) ([]int, error) {
	items, err := v.Array()
	if err != nil {
		return nil, err
	}
	row := make([]int, 0, len(items))
	for k, item := range items {
		n, err := item.Int()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", k, err)
		}
		row = append(row, n)
	}
	return row, nil
}
