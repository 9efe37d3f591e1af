package command

import (
	"errors"
	"testing"

	"github.com/suibian-sun/SunScript/define"
)

func TestParseSetblockAbsolute(t *testing.T) {
	cmd, err := Parse("setblock 10 64 -20 stone")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	sb, ok := cmd.(*Setblock)
	if !ok {
		t.Fatalf("expected *Setblock, got %T", cmd)
	}
	if sb.Pos.X != (Coordinate{Value: 10}) || sb.Pos.Y != (Coordinate{Value: 64}) || sb.Pos.Z != (Coordinate{Value: -20}) {
		t.Fatalf("unexpected position: %+v", sb.Pos)
	}
	if sb.Block.Namespace != "minecraft" || sb.Block.ID != "stone" {
		t.Fatalf("unexpected block: %s", sb.Block)
	}
	if sb.Mode != ModeReplace {
		t.Fatalf("expected default replace mode, got %v", sb.Mode)
	}
}

func TestParseRelativeResolution(t *testing.T) {
	cmd, err := Parse("setblock ~5 ~-1 ~10 stone")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	resolved := Resolve(cmd, define.BlockPos{100, 64, 200}).(*ResolvedSetblock)
	want := define.BlockPos{105, 63, 210}
	if resolved.Pos != want {
		t.Fatalf("resolved to %v, want %v", resolved.Pos, want)
	}
}

func TestParseMixedCoordinates(t *testing.T) {
	cmd, err := Parse("setblock 10 ~5 -20 torch")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	resolved := Resolve(cmd, define.BlockPos{0, 64, 0}).(*ResolvedSetblock)
	want := define.BlockPos{10, 69, -20}
	if resolved.Pos != want {
		t.Fatalf("resolved to %v, want %v", resolved.Pos, want)
	}
}

func TestParseBareTilde(t *testing.T) {
	cmd, err := Parse("setblock ~ ~ ~ air")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	resolved := Resolve(cmd, define.BlockPos{7, -3, 12}).(*ResolvedSetblock)
	if resolved.Pos != (define.BlockPos{7, -3, 12}) {
		t.Fatalf("bare ~ should resolve to origin, got %v", resolved.Pos)
	}

	// 绝对坐标 0 与相对偏移 0 不同
	cmd2, err := Parse("setblock 0 0 0 air")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	resolved2 := Resolve(cmd2, define.BlockPos{7, -3, 12}).(*ResolvedSetblock)
	if resolved2.Pos != (define.BlockPos{0, 0, 0}) {
		t.Fatalf("absolute 0 should ignore origin, got %v", resolved2.Pos)
	}
}

func TestParseLeadingSlash(t *testing.T) {
	cmd, err := Parse("/setblock 1 2 3 stone")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if _, ok := cmd.(*Setblock); !ok {
		t.Fatalf("expected *Setblock, got %T", cmd)
	}
}

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		line          string
		wantNamespace string
		wantID        string
	}{
		{"setblock 0 0 0 stone", "minecraft", "stone"},
		{"setblock 0 0 0 minecraft:oak_stairs", "minecraft", "oak_stairs"},
		{"setblock 0 0 0 my-pack:custom_block", "my-pack", "custom_block"},
		{"setblock 0 0 0 mod:deco/pillar", "mod", "deco/pillar"},
	}
	for _, tt := range tests {
		cmd, err := Parse(tt.line)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tt.line, err)
		}
		b := cmd.(*Setblock).Block
		if b.Namespace != tt.wantNamespace || b.ID != tt.wantID {
			t.Fatalf("%q parsed to %s:%s, want %s:%s", tt.line, b.Namespace, b.ID, tt.wantNamespace, tt.wantID)
		}
	}
}

func TestParseStates(t *testing.T) {
	cmd, err := Parse(`setblock 0 0 0 oak_stairs[facing=north,half=1,open=true,name="a b"]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b := cmd.(*Setblock).Block

	if v, _ := b.State("facing"); v != "north" {
		t.Fatalf("facing = %v (%T), want string north", v, v)
	}
	if v, _ := b.State("half"); v != int32(1) {
		t.Fatalf("half = %v (%T), want int32 1", v, v)
	}
	if v, _ := b.State("open"); v != true {
		t.Fatalf("open = %v (%T), want bool true", v, v)
	}
	if v, _ := b.State("name"); v != "a b" {
		t.Fatalf("name = %v (%T), want string \"a b\"", v, v)
	}

	// 序列化保留插入顺序
	want := `minecraft:oak_stairs[facing=north,half=1,open=true,name="a b"]`
	if got := b.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseQuotedBoolStaysString(t *testing.T) {
	cmd, err := Parse(`setblock 0 0 0 stone[flag="true"]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	v, _ := cmd.(*Setblock).Block.State("flag")
	if v != "true" {
		t.Fatalf("quoted true should stay a string, got %v (%T)", v, v)
	}
}

func TestBlockSpecEqualIgnoresOrder(t *testing.T) {
	a := mustParseBlock(t, `setblock 0 0 0 stone[a=1,b=2]`)
	b := mustParseBlock(t, `setblock 0 0 0 stone[b=2,a=1]`)
	if !a.Equal(b) {
		t.Fatalf("state order should not affect equality: %s vs %s", a, b)
	}

	c := mustParseBlock(t, `setblock 0 0 0 stone[a=1,b=3]`)
	if a.Equal(c) {
		t.Fatalf("different state values should not be equal: %s vs %s", a, c)
	}

	d := mustParseBlock(t, `setblock 0 0 0 stone[a=1]`)
	if a.Equal(d) {
		t.Fatalf("missing state should not be equal: %s vs %s", a, d)
	}
}

func TestParseNBTPassthrough(t *testing.T) {
	raw := `{id:"Chest",Items:[{Name:"minecraft:stone",Count:1b}]}`
	cmd, err := Parse("setblock 0 0 0 chest" + raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	b := cmd.(*Setblock).Block
	if b.NBT != raw {
		t.Fatalf("NBT = %q, want %q", b.NBT, raw)
	}

	// NBT 不参与相等性比较
	plain := mustParseBlock(t, "setblock 0 0 0 chest")
	if !b.Equal(plain) {
		t.Fatalf("NBT should not affect equality")
	}
}

func TestParseFill(t *testing.T) {
	cmd, err := Parse("fill 0 0 0 9 9 9 stone destroy")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	f, ok := cmd.(*Fill)
	if !ok {
		t.Fatalf("expected *Fill, got %T", cmd)
	}
	if f.Mode != ModeDestroy {
		t.Fatalf("mode = %v, want destroy", f.Mode)
	}
	if f.Filter != nil {
		t.Fatalf("unexpected filter: %s", f.Filter)
	}
}

func TestParseFillReplaceFilter(t *testing.T) {
	cmd, err := Parse("fill ~ ~ ~ ~4 ~4 ~4 air replace stone[weathered=true]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	f := cmd.(*Fill)
	if f.Mode != ModeReplace {
		t.Fatalf("mode = %v, want replace", f.Mode)
	}
	if f.Filter == nil || f.Filter.ID != "stone" {
		t.Fatalf("filter not parsed: %v", f.Filter)
	}
	if v, _ := f.Filter.State("weathered"); v != true {
		t.Fatalf("filter state lost: %v", f.Filter)
	}
}

func TestParseFillModes(t *testing.T) {
	for _, mode := range []string{"replace", "destroy", "keep", "hollow", "outline"} {
		cmd, err := Parse("fill 0 0 0 1 1 1 stone " + mode)
		if err != nil {
			t.Fatalf("parse fill %s failed: %v", mode, err)
		}
		if got := cmd.(*Fill).Mode.String(); got != mode {
			t.Fatalf("mode = %q, want %q", got, mode)
		}
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		line    string
		wantPos int
	}{
		// 第三个坐标缺失，在方块名起始处报错
		{"setblock 10 64 stone", 16},
		// 行首的 / 计入偏移
		{"/setblock 10 64 stone", 17},
		{"teleport 0 0 0", 1},
		{"setblock 0 0 0 stone[facing=north", 34},
		{"setblock 0 0 0 stone{id:1", 21},
		{"setblock 0 0 0 Stone", 16},
		{"setblock 0 0 0 bad-name", 19},
		{"setblock 0 0 0 a:b:c", 19},
		{"setblock 0 0 0 stone hollow", 22},
		{"fill 0 0 0 1 1 1 stone melt", 24},
		{"setblock 0 0 0 stone extra trailing", 22},
		{"fill 0 0 0 1 1 1", 17},
		{"setblock 1x 0 0 stone", 10},
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		if err == nil {
			t.Fatalf("parse %q should fail", tt.line)
		}
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("parse %q returned %T, want *SyntaxError", tt.line, err)
		}
		if syntaxErr.Pos != tt.wantPos {
			t.Fatalf("parse %q error at %d (%s), want %d", tt.line, syntaxErr.Pos, syntaxErr.Message, tt.wantPos)
		}
	}
}

func TestParseWithOptions(t *testing.T) {
	opts := Options{DefaultNamespace: "sunscript", DefaultMode: ModeKeep}
	cmd, err := ParseWithOptions("fill 0 0 0 1 1 1 marker", opts)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	f := cmd.(*Fill)
	if f.Block.Namespace != "sunscript" {
		t.Fatalf("namespace = %q, want sunscript", f.Block.Namespace)
	}
	if f.Mode != ModeKeep {
		t.Fatalf("mode = %v, want keep", f.Mode)
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	lines := []string{
		"setblock 10 64 -20 minecraft:stone",
		"setblock ~ ~+5 ~-3 minecraft:torch",
		"setblock 0 0 0 minecraft:chest keep",
		`fill 0 0 0 9 9 9 minecraft:glass[color="light_blue"] hollow`,
		"fill ~ ~ ~ ~4 ~4 ~4 minecraft:air replace minecraft:stone[weathered=true]",
	}
	for _, line := range lines {
		cmd, err := Parse(line)
		if err != nil {
			t.Fatalf("parse %q failed: %v", line, err)
		}
		again, err := Parse(cmd.String())
		if err != nil {
			t.Fatalf("re-parse %q failed: %v", cmd.String(), err)
		}
		if again.String() != cmd.String() {
			t.Fatalf("round trip changed %q to %q", cmd.String(), again.String())
		}
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	cmd, err := Parse("fill ~1 ~2 ~3 ~4 ~5 ~6 stone")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	f := cmd.(*Fill)

	r1 := Resolve(cmd, define.BlockPos{10, 20, 30}).(*ResolvedFill)
	r2 := Resolve(cmd, define.BlockPos{-5, 0, 5}).(*ResolvedFill)

	if r1.From != (define.BlockPos{11, 22, 33}) || r1.To != (define.BlockPos{14, 25, 36}) {
		t.Fatalf("first resolution wrong: %v %v", r1.From, r1.To)
	}
	if r2.From != (define.BlockPos{-4, 2, 8}) || r2.To != (define.BlockPos{-1, 5, 11}) {
		t.Fatalf("second resolution wrong: %v %v", r2.From, r2.To)
	}
	if !f.From.X.Relative || f.From.X.Value != 1 {
		t.Fatalf("resolution mutated the command: %+v", f.From)
	}
}

func mustParseBlock(t *testing.T, line string) *BlockSpec {
	t.Helper()
	cmd, err := Parse(line)
	if err != nil {
		t.Fatalf("parse %q failed: %v", line, err)
	}
	return cmd.(*Setblock).Block
}
