package room

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// splitPath validates a /-separated path and returns its segments
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}

	segments := strings.Split(path, "/")
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
		}
	}

	return segments, nil
}

func splitPaths(paths []string) ([][]string, error) {
	out := make([][]string, 0, len(paths))
	for _, path := range paths {
		segments, err := splitPath(path)
		if err != nil {
			return nil, err
		}
		out = append(out, segments)
	}
	return out, nil
}

// underAny reports whether segments equal or descend from any of the prefixes
func underAny(segments []string, prefixes [][]string) bool {
	for _, prefix := range prefixes {
		if len(prefix) <= len(segments) && slices.Equal(prefix, segments[:len(prefix)]) {
			return true
		}
	}
	return false
}

// setPath stores value at the segments, creating intermediate maps and
// overwriting any non-map value in the way
func setPath(doc map[string]any, segments []string, value any) {
	node := doc
	for _, s := range segments[:len(segments)-1] {
		child, ok := node[s].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[s] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// hasPath reports whether a value is stored at the segments
func hasPath(doc map[string]any, segments []string) bool {
	node := doc
	for _, s := range segments[:len(segments)-1] {
		child, ok := node[s].(map[string]any)
		if !ok {
			return false
		}
		node = child
	}
	_, ok := node[segments[len(segments)-1]]
	return ok
}

// deletePath removes the value at the segments and prunes parents left
// empty. It reports whether anything was removed.
func deletePath(doc map[string]any, segments []string) bool {
	if len(segments) == 1 {
		if _, ok := doc[segments[0]]; !ok {
			return false
		}
		delete(doc, segments[0])
		return true
	}

	child, ok := doc[segments[0]].(map[string]any)
	if !ok {
		return false
	}

	removed := deletePath(child, segments[1:])
	if removed && len(child) == 0 {
		delete(doc, segments[0])
	}
	return removed
}

// toGeneric converts typed values into the plain maps, slices and numbers
// the document holds after a round trip through the store
func toGeneric(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return generic, nil
}
