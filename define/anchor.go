package define

import "fmt"

// Anchor 结构锚点，决定放置原点落在结构的哪个位置
type Anchor uint8

const (
	// AnchorCorner 原点为结构的最小角
	AnchorCorner Anchor = iota
	// AnchorCenter 原点为结构的几何中心
	AnchorCenter
	// AnchorBaseCenter 原点为结构底面的中心
	AnchorBaseCenter
)

// String ...
func (a Anchor) String() string {
	switch a {
	case AnchorCorner:
		return "corner"
	case AnchorCenter:
		return "center"
	case AnchorBaseCenter:
		return "base_center"
	default:
		return fmt.Sprintf("anchor(%d)", uint8(a))
	}
}

// ParseAnchor 解析锚点名称
func ParseAnchor(name string) (Anchor, error) {
	switch name {
	case "corner":
		return AnchorCorner, nil
	case "center":
		return AnchorCenter, nil
	case "base_center":
		return AnchorBaseCenter, nil
	default:
		return AnchorCorner, fmt.Errorf("未知的锚点: %q", name)
	}
}

// Offset 依据结构尺寸计算锚点相对最小角的偏移。
// 返回值加到原点上即为结构最小角的放置位置
func (a Anchor) Offset(size Size) BlockPos {
	switch a {
	case AnchorCenter:
		return BlockPos{-size.Width / 2, -size.Height / 2, -size.Length / 2}
	case AnchorBaseCenter:
		return BlockPos{-size.Width / 2, 0, -size.Length / 2}
	default:
		return BlockPos{}
	}
}

// Direction 水平或垂直方向，用于批量摆放时推进行列
type Direction uint8

const (
	// DirectionEast x 轴正方向
	DirectionEast Direction = iota
	// DirectionWest x 轴负方向
	DirectionWest
	// DirectionSouth z 轴正方向
	DirectionSouth
	// DirectionNorth z 轴负方向
	DirectionNorth
	// DirectionUp y 轴正方向
	DirectionUp
	// DirectionDown y 轴负方向
	DirectionDown
)

// String ...
func (d Direction) String() string {
	switch d {
	case DirectionEast:
		return "east"
	case DirectionWest:
		return "west"
	case DirectionSouth:
		return "south"
	case DirectionNorth:
		return "north"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection 解析方向名称
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "east":
		return DirectionEast, nil
	case "west":
		return DirectionWest, nil
	case "south":
		return DirectionSouth, nil
	case "north":
		return DirectionNorth, nil
	case "up":
		return DirectionUp, nil
	case "down":
		return DirectionDown, nil
	default:
		return DirectionEast, fmt.Errorf("未知的方向: %q", name)
	}
}

// Unit 该方向的单位向量
func (d Direction) Unit() BlockPos {
	switch d {
	case DirectionEast:
		return BlockPos{1, 0, 0}
	case DirectionWest:
		return BlockPos{-1, 0, 0}
	case DirectionSouth:
		return BlockPos{0, 0, 1}
	case DirectionNorth:
		return BlockPos{0, 0, -1}
	case DirectionUp:
		return BlockPos{0, 1, 0}
	case DirectionDown:
		return BlockPos{0, -1, 0}
	default:
		return BlockPos{}
	}
}

// Span 该方向上结构占用的长度，用于推进到下一个摆放位置
func (d Direction) Span(size Size) int {
	switch d {
	case DirectionEast, DirectionWest:
		return size.Width
	case DirectionUp, DirectionDown:
		return size.Height
	default:
		return size.Length
	}
}
