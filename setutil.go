package fsm

import (
	"fmt"
	"sort"

	"github.com/cznic/mathutil"
)

// newSet builds a set from a variadic list of members.
func newSet[T comparable](items ...T) map[T]struct{} {
	s := make(map[T]struct{}, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// cloneSet returns a shallow copy of s.
func cloneSet[T comparable](s map[T]struct{}) map[T]struct{} {
	out := make(map[T]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// unionInto adds every member of src into dst, returning dst.
func unionInto[T comparable](dst, src map[T]struct{}) map[T]struct{} {
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

// intersects reports whether a and b share any member.
func intersects[T comparable](a, b map[T]struct{}) bool {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for k := range small {
		if _, ok := big[k]; ok {
			return true
		}
	}
	return false
}

// isSubset reports whether every member of sub is a member of super.
func isSubset[T comparable](sub, super map[T]struct{}) bool {
	for k := range sub {
		if _, ok := super[k]; !ok {
			return false
		}
	}
	return true
}

// sortedDisplay formats and sorts members of a set for canonicalisation and
// deterministic error messages: build a string key per member, then sort,
// so two sets with the same members always produce the same text
// regardless of iteration order.
func sortedDisplay[T comparable](s map[T]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, formatLabel(k))
	}
	sort.Strings(out)
	return out
}

// formatLabel renders a generic state or alphabet value for display. A
// rune prints as its character rather than its numeric code point, so
// alphabet literals like '0', '1', 'a' read the way callers wrote them;
// every other type falls back to fmt's default %v formatting.
func formatLabel[T comparable](v T) string {
	if r, ok := any(v).(rune); ok {
		return string(r)
	}
	return fmt.Sprintf("%v", v)
}

// maxDegree tracks the widest per-state out-degree seen so far. NFA
// validation records the result, and NFA.Render uses it to size its edge
// slice.
func maxDegree(current, candidate int) int {
	return mathutil.Max(current, candidate)
}
