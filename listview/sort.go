package listview

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Direction is a sort direction
type Direction string

const (
	// Ascending sorts smallest first
	Ascending Direction = "ascending"
	// Descending sorts largest first
	Descending Direction = "descending"
)

// SortState is the client-held sort selection: a single key and a direction.
// It applies only to the page currently in memory and never triggers a
// server round-trip.
type SortState struct {
	Key       string
	Direction Direction
}

// Toggle computes the next sort state after a header click: clicking the
// active key flips its direction, clicking a new key starts ascending.
func Toggle(current *SortState, key string) SortState {
	if current != nil && current.Key == key {
		next := Ascending
		if current.Direction == Ascending {
			next = Descending
		}
		return SortState{Key: key, Direction: next}
	}
	return SortState{Key: key, Direction: Ascending}
}

// FieldFunc extracts the sortable value of a row for a key. The second
// return value is false when the row has no value for that key.
type FieldFunc[T any] func(row T, key string) (interface{}, bool)

// Sort returns an ordered copy of rows. The sort is stable, so ties keep
// their fetch order. Rows missing the sort field always sort last, in both
// directions.
func Sort[T any](rows []T, s *SortState, field FieldFunc[T]) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	if s == nil || s.Key == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		av, aok := field(out[i], s.Key)
		bv, bok := field(out[j], s.Key)
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		cmp := compareValues(av, bv)
		if s.Direction == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareValues orders two field values using their native comparison:
// numbers numerically, strings lexicographically, times chronologically.
// Mixed or unknown types fall back to their string form.
func compareValues(a, b interface{}) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
