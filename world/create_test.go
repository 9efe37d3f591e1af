package world

import "testing"

func TestParseLayers(t *testing.T) {
	layers, err := ParseLayers("bedrock:1,dirt:2,grass:1")
	if err != nil {
		t.Fatalf("ParseLayers failed: %v", err)
	}
	if len(layers) != 3 {
		t.Fatalf("got %d layers, want 3", len(layers))
	}
	if layers[0].Block.ID != "bedrock" || layers[0].Thickness != 1 {
		t.Fatalf("layer 0 = %s:%d", layers[0].Block.ID, layers[0].Thickness)
	}
	if layers[1].Thickness != 2 {
		t.Fatalf("layer 1 thickness = %d, want 2", layers[1].Thickness)
	}
}

func TestParseLayersNamespaced(t *testing.T) {
	layers, err := ParseLayers("minecraft:stone:4")
	if err != nil {
		t.Fatalf("ParseLayers failed: %v", err)
	}
	if layers[0].Block.FullID() != "minecraft:stone" || layers[0].Thickness != 4 {
		t.Fatalf("layer = %s:%d", layers[0].Block.FullID(), layers[0].Thickness)
	}
}

func TestParseLayersInvalid(t *testing.T) {
	cases := []string{"", "stone", "stone:abc", "stone:0", "stone:-1"}
	for _, input := range cases {
		if _, err := ParseLayers(input); err == nil {
			t.Fatalf("ParseLayers(%q) should fail", input)
		}
	}
}

func TestDefaultFlatLayers(t *testing.T) {
	layers := DefaultFlatLayers()
	total := 0
	for _, layer := range layers {
		total += layer.Thickness
	}
	if total != 4 {
		t.Fatalf("default flat stack height = %d, want 4", total)
	}
	if layers[0].Block.ID != "bedrock" {
		t.Fatalf("bottom layer = %s, want bedrock", layers[0].Block.ID)
	}
}
