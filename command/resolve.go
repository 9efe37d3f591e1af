package command

import (
	"fmt"

	"github.com/suibian-sun/SunScript/define"
)

// ResolvedCommand 坐标已全部解析为绝对值的命令，与原始命令文本不再关联
type ResolvedCommand interface {
	isResolvedCommand()
}

// ResolvedSetblock ...
type ResolvedSetblock struct {
	Pos   define.BlockPos
	Block *BlockSpec
	Mode  Mode
}

func (*ResolvedSetblock) isResolvedCommand() {}

// ResolvedFill ...
type ResolvedFill struct {
	From   define.BlockPos
	To     define.BlockPos
	Block  *BlockSpec
	Mode   Mode
	Filter *BlockSpec
}

func (*ResolvedFill) isResolvedCommand() {}

// Resolve 依据原点解析命令中的全部坐标。
// 解析总是成功，且不修改原命令
func Resolve(cmd Command, origin define.BlockPos) ResolvedCommand {
	switch c := cmd.(type) {
	case *Setblock:
		return &ResolvedSetblock{
			Pos:   c.Pos.Resolve(origin),
			Block: c.Block,
			Mode:  c.Mode,
		}
	case *Fill:
		return &ResolvedFill{
			From:   c.From.Resolve(origin),
			To:     c.To.Resolve(origin),
			Block:  c.Block,
			Mode:   c.Mode,
			Filter: c.Filter,
		}
	default:
		panic(fmt.Sprintf("未知的命令类型: %T", cmd))
	}
}
