package script

import (
	"testing"

	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/world"
)

// 5×3×5 的相对坐标方盒，最小角在 ~ ~ ~
const cabinScript = "fill ~ ~ ~ ~+4 ~+2 ~+4 oak_planks hollow\n"

func newTestPlacer(t *testing.T) (*Placer, *world.MemoryWorld) {
	t.Helper()
	w := world.NewMemoryWorld()
	return NewPlacer(NewRunner(w, define.BlockPos{})), w
}

func TestPlaceAtCorner(t *testing.T) {
	p, w := newTestPlacer(t)
	s, _ := ParseString(cabinScript)

	result, err := p.PlaceAt(s, define.BlockPos{100, 64, 200}, define.AnchorCorner)
	if err != nil {
		t.Fatalf("PlaceAt failed: %v", err)
	}
	if result.Origin != (define.BlockPos{100, 64, 200}) {
		t.Fatalf("corner origin = %v, want (100,64,200)", result.Origin)
	}

	corner, _ := w.ReadBlock(define.BlockPos{100, 64, 200})
	if corner.ID != "oak_planks" {
		t.Fatalf("min corner not placed, got %s", corner.FullID())
	}
	far, _ := w.ReadBlock(define.BlockPos{104, 66, 204})
	if far.ID != "oak_planks" {
		t.Fatalf("max corner not placed, got %s", far.FullID())
	}
}

func TestPlaceAtCenterAnchor(t *testing.T) {
	p, _ := newTestPlacer(t)
	s, _ := ParseString(cabinScript)

	result, err := p.PlaceAt(s, define.BlockPos{0, 64, 0}, define.AnchorCenter)
	if err != nil {
		t.Fatalf("PlaceAt failed: %v", err)
	}
	// 5×3×5 的中心偏移为 (-2, -1, -2)
	if result.Origin != (define.BlockPos{-2, 63, -2}) {
		t.Fatalf("center origin = %v, want (-2,63,-2)", result.Origin)
	}
}

func TestPlaceAdjacentEast(t *testing.T) {
	p, _ := newTestPlacer(t)
	s, _ := ParseString(cabinScript)

	first, err := p.PlaceAt(s, define.BlockPos{0, 64, 0}, define.AnchorCorner)
	if err != nil {
		t.Fatalf("first placement failed: %v", err)
	}

	// 向东间隔 10 格:原点推进参照结构宽度 5 + 间隔 10
	second, err := p.PlaceAdjacent(s, first.Origin, define.DirectionEast, 10, s)
	if err != nil {
		t.Fatalf("PlaceAdjacent failed: %v", err)
	}
	if second.Origin != (define.BlockPos{15, 64, 0}) {
		t.Fatalf("adjacent origin = %v, want (15,64,0)", second.Origin)
	}
}

func TestPlaceAdjacentWestUsesOwnSpan(t *testing.T) {
	p, _ := newTestPlacer(t)
	s, _ := ParseString(cabinScript)

	result, err := p.PlaceAdjacent(s, define.BlockPos{0, 64, 0}, define.DirectionWest, 3, nil)
	if err != nil {
		t.Fatalf("PlaceAdjacent failed: %v", err)
	}
	// 向西摆放要让出本结构自身的宽度 5，再加间隔 3
	if result.Origin != (define.BlockPos{-8, 64, 0}) {
		t.Fatalf("west origin = %v, want (-8,64,0)", result.Origin)
	}
}

func TestPlaceGrid(t *testing.T) {
	p, w := newTestPlacer(t)
	s, _ := ParseString(cabinScript)

	results, err := p.PlaceGrid(s, define.BlockPos{0, 64, 0}, 2, 2, 5, 3, define.AnchorCorner)
	if err != nil {
		t.Fatalf("PlaceGrid failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("placed %d structures, want 4", len(results))
	}
	// 第二列原点推进宽度 5 + 间距 5，第二行推进长度 5 + 间距 3
	if results[1].Origin != (define.BlockPos{10, 64, 0}) {
		t.Fatalf("col 2 origin = %v, want (10,64,0)", results[1].Origin)
	}
	if results[2].Origin != (define.BlockPos{0, 64, 8}) {
		t.Fatalf("row 2 origin = %v, want (0,64,8)", results[2].Origin)
	}
	if w.BlockCount() == 0 {
		t.Fatal("grid placement wrote no blocks")
	}
}

func TestPlaceGridInvalidSize(t *testing.T) {
	p, _ := newTestPlacer(t)
	s, _ := ParseString(cabinScript)
	if _, err := p.PlaceGrid(s, define.BlockPos{}, 0, 2, 1, 1, define.AnchorCorner); err == nil {
		t.Fatal("grid with zero columns should fail")
	}
}
