package script

import (
	"reflect"
	"strings"
	"testing"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

func TestRelativizeRoundTrip(t *testing.T) {
	lines := []string{
		"setblock 105 63 210 stone",
		"fill 100 64 200 110 70 220 oak_planks hollow",
		"setblock 100 ~5 200 torch",
		"fill ~ ~ ~ ~3 ~3 ~3 glass replace dirt",
	}
	origins := []define.BlockPos{
		{0, 0, 0},
		{100, 64, 200},
		{-7, 13, 2048},
	}

	for _, text := range lines {
		cmd, err := command.Parse(text)
		if err != nil {
			t.Fatalf("parse %q failed: %v", text, err)
		}
		for _, origin := range origins {
			// 以 origin 为原点解析，再以同一点为基准改写回相对坐标，
			// 改写结果对任意原点 base=origin 的再解析必须复原绝对坐标
			want := command.Resolve(cmd, origin)
			relative := Relativize(absolutize(t, cmd, origin), origin)
			got := command.Resolve(relative, origin)
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("%q @ %v: round trip got %+v, want %+v", text, origin, got, want)
			}
		}
	}
}

// absolutize 把命令解析为绝对坐标后重建为纯绝对坐标的命令
func absolutize(t *testing.T, cmd command.Command, origin define.BlockPos) command.Command {
	t.Helper()
	switch c := command.Resolve(cmd, origin).(type) {
	case *command.ResolvedSetblock:
		return &command.Setblock{Pos: absolutePosition(c.Pos), Block: c.Block, Mode: c.Mode}
	case *command.ResolvedFill:
		return &command.Fill{
			From:   absolutePosition(c.From),
			To:     absolutePosition(c.To),
			Block:  c.Block,
			Mode:   c.Mode,
			Filter: c.Filter,
		}
	default:
		t.Fatalf("unexpected resolved type %T", c)
		return nil
	}
}

func absolutePosition(p define.BlockPos) command.Position {
	return command.Position{
		X: command.Coordinate{Value: p.X()},
		Y: command.Coordinate{Value: p.Y()},
		Z: command.Coordinate{Value: p.Z()},
	}
}

func TestRelativizeKeepsRelativeCoordinates(t *testing.T) {
	cmd, _ := command.Parse("setblock 100 ~5 200 stone")
	relative := Relativize(cmd, define.BlockPos{100, 64, 200}).(*command.Setblock)
	if relative.Pos.X != (command.Coordinate{Value: 0, Relative: true}) {
		t.Fatalf("x should become ~, got %v", relative.Pos.X)
	}
	if relative.Pos.Y != (command.Coordinate{Value: 5, Relative: true}) {
		t.Fatalf("y should stay ~+5, got %v", relative.Pos.Y)
	}
	if relative.Pos.Z.String() != "~" {
		t.Fatalf("z offset 0 should render as bare ~, got %q", relative.Pos.Z)
	}
}

func TestDetectBase(t *testing.T) {
	s, _ := ParseString("setblock 10 64 -20 stone\nfill 5 70 0 15 75 30 dirt\n")
	base := DetectBase(s.Commands())
	if base != (define.BlockPos{5, 64, -20}) {
		t.Fatalf("base = %v, want (5,64,-20)", base)
	}

	// 某轴没有绝对坐标时取 0
	s2, _ := ParseString("setblock ~1 64 ~2 stone\n")
	if base := DetectBase(s2.Commands()); base != (define.BlockPos{0, 64, 0}) {
		t.Fatalf("base = %v, want (0,64,0)", base)
	}
}

func TestConvertRelativePreservesLayout(t *testing.T) {
	s, _ := ParseString("# 屋顶\nsetblock 10 64 20 stone\n\nfill 10 64 20 12 66 22 dirt\n")
	out := ConvertRelative(s, define.BlockPos{10, 64, 20}, "cabin_relative.txt")

	text := out.String()
	if !strings.Contains(text, "# 基准点: 10, 64, 20") {
		t.Fatalf("header missing base point:\n%s", text)
	}
	if !strings.Contains(text, "# 屋顶") {
		t.Fatal("original comment should be preserved")
	}
	if !strings.Contains(text, "setblock ~ ~ ~ minecraft:stone") {
		t.Fatalf("converted setblock missing:\n%s", text)
	}
	if !strings.Contains(text, "fill ~ ~ ~ ~+2 ~+2 ~+2 minecraft:dirt") {
		t.Fatalf("converted fill missing:\n%s", text)
	}

	// 改写后的脚本可以重新解析，且对 base 解析回原始坐标
	reparsed, err := ParseString(text)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	cmds := reparsed.Commands()
	if len(cmds) != 2 {
		t.Fatalf("reparsed %d commands, want 2", len(cmds))
	}
	resolved := command.Resolve(cmds[0], define.BlockPos{10, 64, 20}).(*command.ResolvedSetblock)
	if resolved.Pos != (define.BlockPos{10, 64, 20}) {
		t.Fatalf("resolved to %v, want (10,64,20)", resolved.Pos)
	}
}
