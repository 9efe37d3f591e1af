package world

import "testing"

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"stone", "stone", 0},
		{"stonee", "stone", 1},
		{"stne", "stone", 1},
		{"sotne", "stone", 2},
		{"", "abc", 3},
	}
	for _, c := range cases {
		if got := editDistance(c.a, c.b); got != c.want {
			t.Fatalf("editDistance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSuggestBlock(t *testing.T) {
	if got := suggestBlock("minecraft:stonee"); got != "minecraft:stone" {
		t.Fatalf("suggestion for stonee = %q, want minecraft:stone", got)
	}
	if got := suggestBlock("minecraft:glasss"); got != "minecraft:glass" {
		t.Fatalf("suggestion for glasss = %q, want minecraft:glass", got)
	}
	// 离谱的输入不给建议
	if got := suggestBlock("zzzzzzzzzz"); got != "" {
		t.Fatalf("nonsense input suggested %q, want none", got)
	}
}

func TestNormalizeStateValue(t *testing.T) {
	if v := normalizeStateValue(uint8(1)); v != true {
		t.Fatalf("byte 1 = %v, want true", v)
	}
	if v := normalizeStateValue(uint8(0)); v != false {
		t.Fatalf("byte 0 = %v, want false", v)
	}
	if v := normalizeStateValue(int64(7)); v != int32(7) {
		t.Fatalf("int64 7 = %v (%T), want int32", v, v)
	}
	if v := normalizeStateValue("top"); v != "top" {
		t.Fatalf("string passthrough = %v", v)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "方块", Value: "minecraft:stonee", Suggestion: "minecraft:stone"}
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	withoutSuggestion := &ValidationError{Field: "方块", Value: "minecraft:x"}
	if withoutSuggestion.Error() == msg {
		t.Fatal("suggestion should change the message")
	}
}
