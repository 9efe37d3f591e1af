package region

import (
	"fmt"

	"github.com/suibian-sun/SunScript/command"
	"github.com/suibian-sun/SunScript/define"
)

// ReadFunc 读取指定位置的现有方块
type ReadFunc func(pos define.BlockPos) (*command.BlockSpec, error)

// Plan 一次填充命令展开出的写入序列。
// Plan 本身不持有任何遍历状态，同一个 Plan 可重复扫描且结果一致
type Plan struct {
	box    Box
	block  *command.BlockSpec
	mode   command.Mode
	filter *command.BlockSpec
	read   ReadFunc
}

// NewPlan 依据已解析的填充命令构造写入计划。
// keep 与带过滤方块的 replace 需要读取现有方块，此时 read 不能为空；
// 其余模式不会读取世界
func NewPlan(f *command.ResolvedFill, read ReadFunc) (*Plan, error) {
	needRead := f.Mode == command.ModeKeep ||
		(f.Mode == command.ModeReplace && f.Filter != nil)
	if needRead && read == nil {
		return nil, fmt.Errorf("%s 模式需要读取现有方块", f.Mode)
	}
	return &Plan{
		box:    NewBox(f.From, f.To),
		block:  f.Block,
		mode:   f.Mode,
		filter: f.Filter,
		read:   read,
	}, nil
}

// Box 规范化后的填充区域
func (p *Plan) Box() Box {
	return p.box
}

// Scan 以 x → y → z 的固定嵌套顺序遍历区域内全部格子，对每个需要写入的格子
// 调用一次 visit，block 为 nil 表示写入空气。读取或 visit 返回错误时立即中止，
// 剩余格子不再处理
func (p *Plan) Scan(visit func(pos define.BlockPos, block *command.BlockSpec) error) error {
	for x := p.box.Min.X(); x <= p.box.Max.X(); x++ {
		for y := p.box.Min.Y(); y <= p.box.Max.Y(); y++ {
			for z := p.box.Min.Z(); z <= p.box.Max.Z(); z++ {
				pos := define.BlockPos{x, y, z}
				emit, block, err := p.decide(pos)
				if err != nil {
					return err
				}
				if !emit {
					continue
				}
				if err := visit(pos, block); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// decide 判定单个格子是否写入以及写入什么
func (p *Plan) decide(pos define.BlockPos) (bool, *command.BlockSpec, error) {
	switch p.mode {
	case command.ModeDestroy:
		return true, p.block, nil

	case command.ModeReplace:
		if p.filter == nil {
			return true, p.block, nil
		}
		existing, err := p.read(pos)
		if err != nil {
			return false, nil, err
		}
		if existing.Equal(p.filter) {
			return true, p.block, nil
		}
		return false, nil, nil

	case command.ModeKeep:
		existing, err := p.read(pos)
		if err != nil {
			return false, nil, err
		}
		if existing.IsAir() {
			return true, p.block, nil
		}
		return false, nil, nil

	case command.ModeHollow:
		// 边界放置方块，内部无条件清空
		if p.box.OnBoundary(pos) {
			return true, p.block, nil
		}
		return true, nil, nil

	case command.ModeOutline:
		if p.box.OnEdge(pos) {
			return true, p.block, nil
		}
		return false, nil, nil

	default:
		return false, nil, fmt.Errorf("未知的填充模式: %v", p.mode)
	}
}
