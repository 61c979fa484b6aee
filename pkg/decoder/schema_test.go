package decoder

import (
	"strings"
	"testing"
)

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		want nodeShape
	}{
		{
			name: "root",
			obj:  map[string]any{"rooms": []any{}},
			want: shapeRoot,
		},
		{
			name: "full room",
			obj: map[string]any{
				"roomStart":        true,
				"roomName":         "A",
				"roomDescription":  "d",
				"roomItems":        []any{},
				"roomRequirements": []any{},
				"roomConnections":  []any{},
			},
			want: shapeRoom,
		},
		{
			name: "partial room",
			obj:  map[string]any{"roomName": "A"},
			want: shapeRoom,
		},
		{
			name: "item",
			obj:  map[string]any{"itemName": "Key", "itemDescription": "d"},
			want: shapeItem,
		},
		{
			name: "partial item",
			obj:  map[string]any{"itemObjective": true},
			want: shapeItem,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classifyShape(tc.obj)
			if err != nil {
				t.Fatalf("classifyShape failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("classifyShape = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClassifyShapeEmptyObject(t *testing.T) {
	_, err := classifyShape(map[string]any{})
	if err == nil || !strings.Contains(err.Error(), "must not be empty") {
		t.Errorf("expected empty-object error, got %v", err)
	}
}

func TestClassifyShapeUnknownField(t *testing.T) {
	_, err := classifyShape(map[string]any{"foo": "bar"})
	if err == nil {
		t.Fatal("expected classification to fail")
	}
	if !strings.Contains(err.Error(), "Unknown field(s)") || !strings.Contains(err.Error(), "foo") {
		t.Errorf("expected an unknown-field error naming foo, got %v", err)
	}
}

func TestClassifyShapeUnknownFieldsSorted(t *testing.T) {
	_, err := classifyShape(map[string]any{"zzz": 1, "aaa": 2, "roomName": "A"})
	if err == nil {
		t.Fatal("expected classification to fail")
	}
	if !strings.Contains(err.Error(), "aaa, zzz") {
		t.Errorf("expected unknown fields in sorted order, got %v", err)
	}
}

func TestClassifyShapeCrossShapeConflict(t *testing.T) {
	// Every field is legal somewhere, but no single shape covers them.
	_, err := classifyShape(map[string]any{"roomName": "A", "itemName": "Key"})
	if err == nil {
		t.Fatal("expected classification to fail")
	}
	if !strings.Contains(err.Error(), "another object type") {
		t.Errorf("expected a cross-shape error, got %v", err)
	}
}
