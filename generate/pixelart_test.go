package generate

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/suibian-sun/SunScript/command"
)

var (
	red   = color.NRGBA{R: 142, G: 32, B: 32, A: 255}
	black = color.NRGBA{R: 8, G: 10, B: 15, A: 255}
	clear = color.NRGBA{}
)

func testImage(t *testing.T, rows [][]color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestPixelArtVertical(t *testing.T) {
	// 顶行红色, 底行黑色
	img := testImage(t, [][]color.NRGBA{
		{red, red},
		{black, black},
	})
	s, err := PixelArt(img, PixelArtOptions{})
	if err != nil {
		t.Fatalf("PixelArt: %v", err)
	}
	cmds := s.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	// 同色行合并为一条 fill, 顶行在 y=1
	fills := map[string]int{}
	for _, cmd := range cmds {
		f, ok := cmd.(*command.Fill)
		if !ok {
			t.Fatalf("expected fill, got %T", cmd)
		}
		fills[f.Block.FullID()] = f.From.Y.Value
	}
	if y := fills["minecraft:red_concrete"]; y != 1 {
		t.Fatalf("red row at y=%d, want 1", y)
	}
	if y := fills["minecraft:black_concrete"]; y != 0 {
		t.Fatalf("black row at y=%d, want 0", y)
	}
}

func TestPixelArtFlatSkipsTransparent(t *testing.T) {
	img := testImage(t, [][]color.NRGBA{
		{red, clear, red},
	})
	s, err := PixelArt(img, PixelArtOptions{Flat: true})
	if err != nil {
		t.Fatalf("PixelArt: %v", err)
	}
	cmds := s.Commands()
	if len(cmds) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(cmds))
	}
	for _, cmd := range cmds {
		sb, ok := cmd.(*command.Setblock)
		if !ok {
			t.Fatalf("expected setblock, got %T", cmd)
		}
		if sb.Pos.Y.Value != 0 {
			t.Fatalf("flat mode must stay on y=0, got %d", sb.Pos.Y.Value)
		}
	}
}

func TestPixelArtAllTransparent(t *testing.T) {
	img := testImage(t, [][]color.NRGBA{{clear, clear}})
	if _, err := PixelArt(img, PixelArtOptions{}); err == nil {
		t.Fatalf("expected error for fully transparent image")
	}
}

func TestPixelArtHeaderComments(t *testing.T) {
	img := testImage(t, [][]color.NRGBA{{red}})
	s, err := PixelArt(img, PixelArtOptions{})
	if err != nil {
		t.Fatalf("PixelArt: %v", err)
	}
	if !strings.HasPrefix(s.String(), "# 像素画") {
		t.Fatalf("missing header comment, got %q", s.String())
	}
}

func TestHeightmapColumns(t *testing.T) {
	// 黑色像素 1 格高, 白色像素封顶
	img := testImage(t, [][]color.NRGBA{
		{color.NRGBA{A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	})
	s, err := Heightmap(img, HeightmapOptions{MaxHeight: 8})
	if err != nil {
		t.Fatalf("Heightmap: %v", err)
	}
	var tops []int
	fillTop := -1
	for _, cmd := range s.Commands() {
		switch c := cmd.(type) {
		case *command.Setblock:
			tops = append(tops, c.Pos.Y.Value)
			if c.Block.FullID() != "minecraft:grass_block" {
				t.Fatalf("unexpected top block %s", c.Block.FullID())
			}
		case *command.Fill:
			fillTop = c.To.Y.Value
		}
	}
	if len(tops) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(tops))
	}
	if tops[0] != 0 {
		t.Fatalf("black column top at y=%d, want 0", tops[0])
	}
	if tops[1] != 7 {
		t.Fatalf("white column top at y=%d, want 7", tops[1])
	}
	// 白色柱体从 y0 填到顶面之下
	if fillTop != 6 {
		t.Fatalf("white column body fills to y=%d, want 6", fillTop)
	}
}

func TestColumnHeightRange(t *testing.T) {
	if h := columnHeight(color.NRGBA{A: 255}, 32); h != 1 {
		t.Fatalf("black height %d, want 1", h)
	}
	if h := columnHeight(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 32); h != 32 {
		t.Fatalf("white height %d, want 32", h)
	}
}
