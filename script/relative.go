package script

import (
	"fmt"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

// relativizeCoordinate 把一个绝对坐标改写为相对 base 的偏移，
// 已是相对的坐标保持不变
func relativizeCoordinate(c command.Coordinate, base int) command.Coordinate {
	if c.Relative {
		return c
	}
	return command.Coordinate{Value: c.Value - base, Relative: true}
}

func relativizePosition(p command.Position, base define.BlockPos) command.Position {
	return command.Position{
		X: relativizeCoordinate(p.X, base.X()),
		Y: relativizeCoordinate(p.Y, base.Y()),
		Z: relativizeCoordinate(p.Z, base.Z()),
	}
}

// Relativize 把命令中的全部绝对坐标改写为相对 base 的偏移。
// 改写是解析的无损逆运算:以 base 为原点解析改写后的命令，
// 得到的绝对坐标与原命令完全一致
func Relativize(cmd command.Command, base define.BlockPos) command.Command {
	switch c := cmd.(type) {
	case *command.Setblock:
		return &command.Setblock{
			Pos:   relativizePosition(c.Pos, base),
			Block: c.Block,
			Mode:  c.Mode,
		}
	case *command.Fill:
		return &command.Fill{
			From:   relativizePosition(c.From, base),
			To:     relativizePosition(c.To, base),
			Block:  c.Block,
			Mode:   c.Mode,
			Filter: c.Filter,
		}
	default:
		return cmd
	}
}

// DetectBase 从命令序列中自动探测基准点，取全部绝对坐标的逐轴最小值。
// 某轴没有绝对坐标时该轴取 0
func DetectBase(cmds []command.Command) define.BlockPos {
	box, seen := AbsoluteBounds(cmds)
	base := define.BlockPos{}
	for axis := 0; axis < 3; axis++ {
		if seen[axis] {
			base[axis] = box.Min[axis]
		}
	}
	return base
}

// ConvertRelative 生成坐标全部相对 base 的新脚本。
// 注释与空行原样保留位置，脚本开头插入说明基准点与范围的注释块
func ConvertRelative(s *Script, base define.BlockPos, outputName string) *Script {
	out := &Script{Lines: make([]Line, 0, len(s.Lines)+12)}

	header := buildHeader(s, base, outputName)
	for _, text := range header {
		out.Lines = append(out.Lines, Line{Number: len(out.Lines) + 1, Text: text})
	}

	for _, line := range s.Lines {
		converted := line
		if line.Cmd != nil {
			converted.Cmd = Relativize(line.Cmd, base)
			converted.Text = converted.Cmd.String()
		}
		converted.Number = len(out.Lines) + 1
		out.Lines = append(out.Lines, converted)
	}
	return out
}

// buildHeader 改写后脚本开头的说明注释块
func buildHeader(s *Script, base define.BlockPos, outputName string) []string {
	lines := []string{
		"# 已转换为相对坐标",
		fmt.Sprintf("# 基准点: %d, %d, %d", base.X(), base.Y(), base.Z()),
		"#",
	}
	if box, ok := Bounds(s.Commands()); ok {
		size := box.Size()
		lines = append(lines,
			"# 结构范围:",
			fmt.Sprintf("#   %v ~ %v，尺寸 %s", box.Min, box.Max, size),
			"#",
			"# 并排摆放示例(向东间隔 10 格):",
			fmt.Sprintf("#   结构 1: --origin %d,%d,%d", base.X(), base.Y(), base.Z()),
			fmt.Sprintf("#   结构 2: --origin %d,%d,%d (宽度=%d, 间隔=10)",
				base.X()+size.Width+10, base.Y(), base.Z(), size.Width),
			"#",
		)
	}
	lines = append(lines,
		"# 基本用法:",
		fmt.Sprintf("#   sunscript batch <世界目录> %s --origin %d,%d,%d",
			outputName, base.X(), base.Y(), base.Z()),
		"",
	)
	return lines
}
