package decoder

import (
	"sort"
	"strings"
)

// nodeShape tags the three legal object shapes in a content document.
type nodeShape int

const (
	shapeRoot nodeShape = iota
	shapeRoom
	shapeItem
)

// schemas lists the allowed field-name set per shape. Order matters:
// classification is a first-match subset test, so an object matching
// more than one shape resolves to the earlier entry.
var schemas = []struct {
	shape  nodeShape
	fields map[string]bool
}{
	{shapeRoot, map[string]bool{
		"rooms": true,
	}},
	{shapeRoom, map[string]bool{
		"roomStart":        true,
		"roomName":         true,
		"roomDescription":  true,
		"roomItems":        true,
		"roomRequirements": true,
		"roomConnections":  true,
	}},
	{shapeItem, map[string]bool{
		"itemObjective":   true,
		"itemName":        true,
		"itemDescription": true,
	}},
}

// classifyShape decides which shape an object's field-name set matches,
// per the priority order of schemas. An empty object or a field set not
// covered by a single shape is an error.
func classifyShape(obj map[string]any) (nodeShape, error) {
	if len(obj) == 0 {
		return 0, contentErrf("Each JSON object must not be empty.")
	}

	for _, schema := range schemas {
		if isSubset(obj, schema.fields) {
			return schema.shape, nil
		}
	}

	var unknown []string
	for field := range obj {
		if !knownField(field) {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, contentErrf("Unknown field(s) in the JSON object: %s.", strings.Join(unknown, ", "))
	}
	return 0, contentErrf("JSON object contains field(s) of another object type.")
}

func isSubset(obj map[string]any, allowed map[string]bool) bool {
	for field := range obj {
		if !allowed[field] {
			return false
		}
	}
	return true
}

func knownField(field string) bool {
	for _, schema := range schemas {
		if schema.fields[field] {
			return true
		}
	}
	return false
}
