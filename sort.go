package folioview

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is the order of a sorted tabular view.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortState tracks the active sort of one tabular view (transactions,
// holdings, ticker returns all share it).
type SortState struct {
	Key string
	Dir Direction
}

// Click selects a sort key the way a column header click does: the same key
// toggles the direction, a new key resets to ascending.
func (s *SortState) Click(key string) {
	if s.Key == key {
		if s.Dir == Ascending {
			s.Dir = Descending
		} else {
			s.Dir = Ascending
		}
		return
	}
	s.Key = key
	s.Dir = Ascending
}

// collator performs the locale-aware, case-normalized comparison used for
// every non-numeric sort key.
var collator = collate.New(language.Und, collate.IgnoreCase)

// SortBy returns a stably sorted copy of records, ordered by the key
// extracted from each record.
//
// Numeric keys compare numerically, everything else as case-normalized
// strings. A nil (or absent Value) key compares after all values; that
// outcome is computed once and then the whole comparison, nil case included,
// is negated for descending order, so nils trail an ascending sort and lead
// a descending one instead of staying pinned to one end.
func SortBy[T any](records []T, key func(T) any, dir Direction) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareKeys(key(out[i]), key(out[j]))
		if dir == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareKeys(a, b any) int {
	an, bn := isNull(a), isNull(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			default:
				return 0
			}
		}
	}
	return collator.CompareString(asString(a), asString(b))
}

func asString(v any) string {
	if s, ok := v.(*string); ok {
		return *s // nil was ruled out by isNull
	}
	return fmt.Sprint(v)
}

func isNull(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case Value:
		return !x.Valid
	case *float64:
		return x == nil
	case *string:
		return x == nil
	case string:
		return x == ""
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case Value:
		return x.Float, x.Valid
	case Percent:
		return float64(x), true
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case *float64:
		if x == nil {
			return 0, false
		}
		return *x, true
	default:
		return 0, false
	}
}
