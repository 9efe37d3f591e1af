package region

import (
	"fmt"

	"github.com/suibian-sun/SunScript/define"
)

// Box 两端闭合的轴对齐长方体
type Box struct {
	Min define.BlockPos
	Max define.BlockPos
}

// NewBox 由任意两个对角点构造规范化的 Box，逐轴取最小与最大值
func NewBox(a, b define.BlockPos) Box {
	return Box{
		Min: define.BlockPos{min(a.X(), b.X()), min(a.Y(), b.Y()), min(a.Z(), b.Z())},
		Max: define.BlockPos{max(a.X(), b.X()), max(a.Y(), b.Y()), max(a.Z(), b.Z())},
	}
}

// Volume 区域内的格子总数
func (b Box) Volume() int {
	return (b.Max.X() - b.Min.X() + 1) * (b.Max.Y() - b.Min.Y() + 1) * (b.Max.Z() - b.Min.Z() + 1)
}

// Size 区域在三个轴上的尺寸
func (b Box) Size() define.Size {
	return define.Size{
		Width:  b.Max.X() - b.Min.X() + 1,
		Height: b.Max.Y() - b.Min.Y() + 1,
		Length: b.Max.Z() - b.Min.Z() + 1,
	}
}

// Contains ...
func (b Box) Contains(p define.BlockPos) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// OnBoundary 是否位于六个面中的至少一个上
func (b Box) OnBoundary(p define.BlockPos) bool {
	return p.X() == b.Min.X() || p.X() == b.Max.X() ||
		p.Y() == b.Min.Y() || p.Y() == b.Max.Y() ||
		p.Z() == b.Min.Z() || p.Z() == b.Max.Z()
}

// OnEdge 是否位于十二条棱上，即至少同时落在两个轴的边界上。
// 厚度为 1 的轴上每个格子都同时满足该轴的上下边界
func (b Box) OnEdge(p define.BlockPos) bool {
	axes := 0
	if p.X() == b.Min.X() || p.X() == b.Max.X() {
		axes++
	}
	if p.Y() == b.Min.Y() || p.Y() == b.Max.Y() {
		axes++
	}
	if p.Z() == b.Min.Z() || p.Z() == b.Max.Z() {
		axes++
	}
	return axes >= 2
}

// String ...
func (b Box) String() string {
	return fmt.Sprintf("%v ~ %v", b.Min, b.Max)
}
