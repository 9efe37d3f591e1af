package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suibian-sun/SunScript/define"
)

// Mode 方块放置模式，决定区域内每个格子的处理方式
type Mode uint8

const (
	// ModeReplace 无条件放置；携带过滤方块时仅替换与之相同的格子
	ModeReplace Mode = iota
	// ModeDestroy 无条件放置，不模拟掉落物，效果与无过滤的 replace 相同
	ModeDestroy
	// ModeKeep 仅在空气格子放置
	ModeKeep
	// ModeHollow 边界放置方块，内部强制清空为空气
	ModeHollow
	// ModeOutline 仅在区域的十二条棱上放置方块，其余格子保持原样
	ModeOutline
)

// String ...
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeDestroy:
		return "destroy"
	case ModeKeep:
		return "keep"
	case ModeHollow:
		return "hollow"
	case ModeOutline:
		return "outline"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Options 解析命令时使用的默认值
type Options struct {
	// DefaultNamespace 方块名省略命名空间时补全的命名空间
	DefaultNamespace string
	// DefaultMode 命令末尾省略模式时使用的放置模式
	DefaultMode Mode
}

// DefaultOptions 返回原版命令的默认解析配置
func DefaultOptions() Options {
	return Options{
		DefaultNamespace: "minecraft",
		DefaultMode:      ModeReplace,
	}
}

// Coordinate 单轴坐标，绝对值或相对原点的偏移。
// 相对坐标偏移为 0 表示恰好落在原点对应轴上，与绝对坐标 0 不同。
type Coordinate struct {
	Value    int
	Relative bool
}

// Resolve 依据原点对应轴的值解析为绝对坐标
func (c Coordinate) Resolve(origin int) int {
	if c.Relative {
		return origin + c.Value
	}
	return c.Value
}

// String ...
func (c Coordinate) String() string {
	if !c.Relative {
		return strconv.Itoa(c.Value)
	}
	if c.Value == 0 {
		return "~"
	}
	return fmt.Sprintf("~%+d", c.Value)
}

// Position 一条命令中的三轴坐标，可逐轴混用绝对与相对坐标
type Position struct {
	X, Y, Z Coordinate
}

// Resolve 依据原点将三轴坐标解析为绝对坐标
func (p Position) Resolve(origin define.BlockPos) define.BlockPos {
	return define.BlockPos{
		p.X.Resolve(origin.X()),
		p.Y.Resolve(origin.Y()),
		p.Z.Resolve(origin.Z()),
	}
}

// String ...
func (p Position) String() string {
	return p.X.String() + " " + p.Y.String() + " " + p.Z.String()
}

// Command 一条解析完成的命令，坐标尚未解析为绝对值。
// 命令在解析后不再修改，同一条命令可针对不同原点重复解析。
type Command interface {
	fmt.Stringer
	isCommand()
}

// Setblock 在单个位置放置一个方块
type Setblock struct {
	Pos   Position
	Block *BlockSpec
	Mode  Mode
}

func (*Setblock) isCommand() {}

// String 还原为规范的命令文本，replace 模式省略不写
func (s *Setblock) String() string {
	var b strings.Builder
	b.WriteString("setblock ")
	b.WriteString(s.Pos.String())
	b.WriteByte(' ')
	b.WriteString(s.Block.String())
	if s.Mode != ModeReplace {
		b.WriteByte(' ')
		b.WriteString(s.Mode.String())
	}
	return b.String()
}

// Fill 以指定方块填充两个对角点围成的长方体区域
type Fill struct {
	From  Position
	To    Position
	Block *BlockSpec
	Mode  Mode
	// Filter 仅 replace 模式可携带，非空时只替换与之相同的方块
	Filter *BlockSpec
}

func (*Fill) isCommand() {}

// String 还原为规范的命令文本，无过滤方块的 replace 模式省略不写
func (f *Fill) String() string {
	var b strings.Builder
	b.WriteString("fill ")
	b.WriteString(f.From.String())
	b.WriteByte(' ')
	b.WriteString(f.To.String())
	b.WriteByte(' ')
	b.WriteString(f.Block.String())
	if f.Mode != ModeReplace || f.Filter != nil {
		b.WriteByte(' ')
		b.WriteString(f.Mode.String())
	}
	if f.Filter != nil {
		b.WriteByte(' ')
		b.WriteString(f.Filter.String())
	}
	return b.String()
}

