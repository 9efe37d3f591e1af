package script

import (
	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/region"
)

// positions 一条命令引用的全部坐标
func positions(cmd command.Command) []command.Position {
	switch c := cmd.(type) {
	case *command.Setblock:
		return []command.Position{c.Pos}
	case *command.Fill:
		return []command.Position{c.From, c.To}
	default:
		return nil
	}
}

// Bounds 统计命令序列引用的全部坐标的包围盒。
// 坐标按字面值计入，不区分绝对与相对，也不做解析；
// 没有任何坐标时 ok 为 false
func Bounds(cmds []command.Command) (box region.Box, ok bool) {
	for _, cmd := range cmds {
		for _, pos := range positions(cmd) {
			p := define.BlockPos{pos.X.Value, pos.Y.Value, pos.Z.Value}
			if !ok {
				box = region.Box{Min: p, Max: p}
				ok = true
				continue
			}
			for axis := 0; axis < 3; axis++ {
				box.Min[axis] = min(box.Min[axis], p[axis])
				box.Max[axis] = max(box.Max[axis], p[axis])
			}
		}
	}
	return box, ok
}

// AbsoluteBounds 只统计绝对坐标的包围盒，逐轴独立判断。
// 用于为坐标改写自动探测基准点，相对坐标不参与
func AbsoluteBounds(cmds []command.Command) (box region.Box, ok [3]bool) {
	var seen [3]bool
	for _, cmd := range cmds {
		for _, pos := range positions(cmd) {
			for axis, coord := range [3]command.Coordinate{pos.X, pos.Y, pos.Z} {
				if coord.Relative {
					continue
				}
				if !seen[axis] {
					box.Min[axis] = coord.Value
					box.Max[axis] = coord.Value
					seen[axis] = true
					continue
				}
				box.Min[axis] = min(box.Min[axis], coord.Value)
				box.Max[axis] = max(box.Max[axis], coord.Value)
			}
		}
	}
	return box, seen
}
