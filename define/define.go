package define

import "fmt"

// BlockPos 世界中一个方块的绝对坐标 (X, Y, Z)。
// 使用 int 以保证超大坐标脚本在解析阶段不会溢出,
// 写入存档时再收窄到区块坐标范围。
type BlockPos [3]int

func (p BlockPos) X() int {
	return p[0]
}

func (p BlockPos) Y() int {
	return p[1]
}

func (p BlockPos) Z() int {
	return p[2]
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p[0], p[1], p[2])
}

// Add 返回 p 与 q 逐轴相加的新坐标。
func (p BlockPos) Add(q BlockPos) BlockPos {
	return BlockPos{p[0] + q[0], p[1] + q[1], p[2] + q[2]}
}

// Sub 返回 p 与 q 逐轴相减的新坐标。
func (p BlockPos) Sub(q BlockPos) BlockPos {
	return BlockPos{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// ChunkPos 区块坐标, 每个区块覆盖 16x16 个方块列。
type ChunkPos [2]int32

func (p ChunkPos) X() int32 {
	return p[0]
}

func (p ChunkPos) Z() int32 {
	return p[1]
}

// Size 结构在三个轴上的尺寸(含两端)。
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Length int `json:"length"`
}

func (s Size) GetVolume() int {
	return s.Width * s.Height * s.Length
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%dx%d", s.Width, s.Height, s.Length)
}

// FloorDiv 向负无穷取整的整除, 用于世界坐标到区块坐标的换算。
func FloorDiv(value, divisor int) int {
	q := value / divisor
	if (value%divisor != 0) && ((value < 0) != (divisor < 0)) {
		q--
	}
	return q
}

// FloorMod 与 FloorDiv 配套的取模, 结果符号与 divisor 一致。
func FloorMod(value, divisor int) int {
	return value - FloorDiv(value, divisor)*divisor
}
