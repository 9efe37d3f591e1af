package script

import (
	"fmt"

	"github.com/suibian-sun/SunScript/define"
	"github.com/suibian-sun/SunScript/region"
)

// PlacementResult 一次结构摆放的结果
type PlacementResult struct {
	// BlocksPlaced 实际写入的方块数
	BlocksPlaced int
	// Box 脚本坐标系下的结构包围盒
	Box region.Box
	// Origin 本次摆放实际使用的解析原点
	Origin define.BlockPos
}

// Placer 按结构的实际尺寸计算摆放位置，避免多个结构互相重叠。
// 脚本应使用相对坐标，绝对坐标的脚本不受原点影响
type Placer struct {
	Runner *Runner
}

// NewPlacer ...
func NewPlacer(r *Runner) *Placer {
	return &Placer{Runner: r}
}

// runAt 以指定原点执行脚本并汇总写入数
func (p *Placer) runAt(s *Script, origin define.BlockPos) (int, error) {
	r := *p.Runner
	r.Origin = origin
	result, err := r.RunScript(s)
	if err != nil {
		return result.Total, err
	}
	if result.ErrorCount > 0 {
		return result.Total, fmt.Errorf("摆放时有 %d 行执行失败", result.ErrorCount)
	}
	return result.Total, nil
}

// PlaceAt 把结构摆放到目标位置，锚点决定目标位置落在结构的哪个点上
func (p *Placer) PlaceAt(s *Script, target define.BlockPos, anchor define.Anchor) (*PlacementResult, error) {
	box, ok := Bounds(s.Commands())
	if !ok {
		return nil, fmt.Errorf("脚本中没有可摆放的命令")
	}

	origin := target.Add(anchor.Offset(box.Size()))
	placed, err := p.runAt(s, origin)
	if err != nil {
		return nil, err
	}
	return &PlacementResult{BlocksPlaced: placed, Box: box, Origin: origin}, nil
}

// PlaceAdjacent 把结构摆放到参照位置的某个方向上，间隔 gap 格。
// ref 非空时以参照结构的实际尺寸推算偏移，否则从参照位置直接偏移
func (p *Placer) PlaceAdjacent(s *Script, relativeTo define.BlockPos, dir define.Direction, gap int, ref *Script) (*PlacementResult, error) {
	box, ok := Bounds(s.Commands())
	if !ok {
		return nil, fmt.Errorf("脚本中没有可摆放的命令")
	}

	var refSize define.Size
	if ref != nil {
		if refBox, ok := Bounds(ref.Commands()); ok {
			refSize = refBox.Size()
		}
	}

	// 正方向上偏移参照结构的跨度，负方向上偏移本结构自身的跨度
	span := gap
	switch dir {
	case define.DirectionEast, define.DirectionSouth, define.DirectionUp:
		span += dir.Span(refSize)
	default:
		span += dir.Span(box.Size())
	}

	unit := dir.Unit()
	origin := relativeTo.Add(define.BlockPos{unit.X() * span, unit.Y() * span, unit.Z() * span})
	placed, err := p.runAt(s, origin)
	if err != nil {
		return nil, err
	}
	return &PlacementResult{BlocksPlaced: placed, Box: box, Origin: origin}, nil
}

// PlaceGrid 以 cols×rows 的网格批量摆放结构，列沿 x 轴、行沿 z 轴推进。
// 相邻结构的间距为结构对应方向的尺寸加 spacing
func (p *Placer) PlaceGrid(s *Script, start define.BlockPos, cols, rows int, spacingX, spacingZ int, anchor define.Anchor) ([]*PlacementResult, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("网格尺寸无效: %d×%d", cols, rows)
	}
	box, ok := Bounds(s.Commands())
	if !ok {
		return nil, fmt.Errorf("脚本中没有可摆放的命令")
	}
	size := box.Size()

	results := make([]*PlacementResult, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			target := define.BlockPos{
				start.X() + col*(size.Width+spacingX),
				start.Y(),
				start.Z() + row*(size.Length+spacingZ),
			}
			result, err := p.PlaceAt(s, target, anchor)
			if err != nil {
				return results, fmt.Errorf("网格第 %d 行第 %d 列摆放失败: %w", row+1, col+1, err)
			}
			results = append(results, result)
		}
	}
	return results, nil
}
