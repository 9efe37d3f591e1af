package utils

import "testing"

func TestPropertiesToStateStr(t *testing.T) {
	tests := []struct {
		name       string
		properties map[string]any
		want       string
	}{
		{
			name:       "empty states",
			properties: map[string]any{},
			want:       "[]",
		},
		{
			name:       "nil states",
			properties: nil,
			want:       "[]",
		},
		{
			name:       "sorted keys with mixed types",
			properties: map[string]any{"open_bit": false, "direction": int32(2)},
			want:       `["direction"=2,"open_bit"=false]`,
		},
		{
			name:       "string value quoted",
			properties: map[string]any{"color": "red"},
			want:       `["color"="red"]`,
		},
		{
			name:       "byte-backed bool stays numeric",
			properties: map[string]any{"upside_down_bit": uint8(1)},
			want:       `["upside_down_bit"=1]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PropertiesToStateStr(tt.properties)
			if got != tt.want {
				t.Fatalf("PropertiesToStateStr(%v) = %q, want %q", tt.properties, got, tt.want)
			}
		})
	}
}

func TestDeepCopyNBT(t *testing.T) {
	src := map[string]any{
		"id": "Chest",
		"Items": []any{
			map[string]any{"Name": "minecraft:stone", "Count": uint8(64)},
		},
		"pos": []int32{1, 2, 3},
	}

	dst := DeepCopyNBT(src)

	dst["id"] = "Furnace"
	dst["Items"].([]any)[0].(map[string]any)["Count"] = uint8(1)
	dst["pos"].([]int32)[0] = 99

	if src["id"] != "Chest" {
		t.Fatalf("source id mutated: %v", src["id"])
	}
	if got := src["Items"].([]any)[0].(map[string]any)["Count"]; got != uint8(64) {
		t.Fatalf("nested item count mutated: %v", got)
	}
	if got := src["pos"].([]int32)[0]; got != int32(1) {
		t.Fatalf("int32 array mutated: %v", got)
	}

	if DeepCopyNBT(nil) != nil {
		t.Fatalf("copy of nil should be nil")
	}
}
