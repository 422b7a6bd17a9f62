package snapshot

import (
	"math"
	"sort"
	"time"

	"github.com/spf13/cast"
)

// toFloat coerces a loosely typed number; absent, malformed, NaN and
// infinite values become 0
func toFloat(v any) float64 {
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func toInt(v any) int {
	return int(toFloat(v))
}

func toString(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func toBool(v any) bool {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// toMap coerces a nested object; anything else becomes an empty map
func toMap(v any) map[string]any {
	m, err := cast.ToStringMapE(v)
	if err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// toTime reads epoch milliseconds; non-positive values yield the zero time
func toTime(v any) time.Time {
	ms := toFloat(v)
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}

func toTimePtr(v any) *time.Time {
	t := toTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// toSet reads a set of labels stored either as an array of strings or as an
// object whose keys are labels with truthy values (or whose values are the
// labels). The result is deduplicated, keeping array order or sorting keys.
func toSet(v any) []string {
	seen := map[string]bool{}
	out := []string{}
	add := func(label string) {
		if label == "" || seen[label] {
			return
		}
		seen[label] = true
		out = append(out, label)
	}

	switch raw := v.(type) {
	case []any:
		for _, item := range raw {
			add(toString(item))
		}
	case []string:
		for _, item := range raw {
			add(item)
		}
	default:
		m := toMap(v)
		for _, key := range sortedKeys(m) {
			switch value := m[key].(type) {
			case string:
				add(value)
			default:
				if toBool(value) {
					add(key)
				}
			}
		}
	}

	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// millis converts a time to epoch milliseconds for the shared record
func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func millisPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}
