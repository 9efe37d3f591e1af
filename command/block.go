package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bongnv/go-container/orderedmap"
)

// BlockSpec 方块的规范化描述：命名空间、方块名、方块状态与可选的 NBT 数据。
// 状态的插入顺序在序列化时保留，相等性比较与顺序无关
type BlockSpec struct {
	Namespace string
	ID        string
	// States 方块状态，值为 bool、int32 或 string
	States *orderedmap.OrderedMap[string, any]
	// NBT 原始 SNBT 文本（含花括号），核心流程原样透传，仅在写入存档前解码
	NBT string
}

// NewBlockSpec 依据方块名构造 BlockSpec，省略命名空间时补全为 minecraft
func NewBlockSpec(name string) *BlockSpec {
	namespace := "minecraft"
	if idx := strings.Index(name, ":"); idx >= 0 {
		namespace, name = name[:idx], name[idx+1:]
	}
	return &BlockSpec{
		Namespace: namespace,
		ID:        name,
		States:    orderedmap.New[string, any](),
	}
}

// Air 返回隐式空方块
func Air() *BlockSpec {
	return NewBlockSpec("air")
}

// FullID 带命名空间的完整方块名
func (b *BlockSpec) FullID() string {
	return b.Namespace + ":" + b.ID
}

// SetState 设置一个方块状态。键已存在时覆盖其值并保留原插入位置
func (b *BlockSpec) SetState(key string, value any) {
	if b.States == nil {
		b.States = orderedmap.New[string, any]()
	}
	b.States.Set(key, value)
}

// State 读取一个方块状态
func (b *BlockSpec) State(key string) (any, bool) {
	if b.States == nil {
		return nil, false
	}
	return b.States.Get(key)
}

// StateCount 方块状态的数量
func (b *BlockSpec) StateCount() int {
	if b.States == nil {
		return 0
	}
	return b.States.Len()
}

// StatesMap 以普通 map 返回全部状态，供运行时 ID 查询使用
func (b *BlockSpec) StatesMap() map[string]any {
	m := make(map[string]any, b.StateCount())
	if b.States != nil {
		b.States.Scan(func(k string, v any) bool {
			m[k] = v
			return true
		})
	}
	return m
}

// IsAir 是否为隐式空方块（无状态的 minecraft:air）
func (b *BlockSpec) IsAir() bool {
	return b.Namespace == "minecraft" && b.ID == "air" && b.StateCount() == 0
}

// Equal 判断两个方块描述是否相同。
// 命名空间、方块名与全部状态一致即相等，状态顺序与 NBT 数据不参与比较
func (b *BlockSpec) Equal(other *BlockSpec) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Namespace != other.Namespace || b.ID != other.ID {
		return false
	}
	if b.StateCount() != other.StateCount() {
		return false
	}
	equal := true
	if b.States != nil {
		b.States.Scan(func(k string, v any) bool {
			ov, ok := other.State(k)
			if !ok || ov != v {
				equal = false
				return false
			}
			return true
		})
	}
	return equal
}

// Clone 深拷贝方块描述
func (b *BlockSpec) Clone() *BlockSpec {
	if b == nil {
		return nil
	}
	c := &BlockSpec{
		Namespace: b.Namespace,
		ID:        b.ID,
		NBT:       b.NBT,
	}
	if b.States != nil {
		c.States = orderedmap.New[string, any]()
		b.States.Scan(func(k string, v any) bool {
			c.States.Set(k, v)
			return true
		})
	}
	return c
}

// String 序列化为命令文本中的方块描述，状态按插入顺序输出
func (b *BlockSpec) String() string {
	var sb strings.Builder
	sb.WriteString(b.FullID())
	if b.StateCount() > 0 {
		sb.WriteByte('[')
		first := true
		b.States.Scan(func(k string, v any) bool {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(formatStateValue(v))
			return true
		})
		sb.WriteByte(']')
	}
	if b.NBT != "" {
		sb.WriteString(b.NBT)
	}
	return sb.String()
}

func formatStateValue(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case string:
		if isBareToken(t) {
			return t
		}
		return strconv.Quote(t)
	default:
		return fmt.Sprint(v)
	}
}

// isBareToken 判断字符串能否不加引号直接作为状态值输出
func isBareToken(s string) bool {
	if s == "" || s == "true" || s == "false" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	// 纯数字会被解析回整数，必须加引号
	for _, r := range s {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}
