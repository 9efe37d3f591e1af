package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DeepCopyNBT 深拷贝一个NBT复合标签，避免修改坐标时污染原始数据
func DeepCopyNBT(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = deepCopyNBTValue(v)
	}
	return dst
}

func deepCopyNBTValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return DeepCopyNBT(t)
	case []any:
		list := make([]any, len(t))
		for i, e := range t {
			list[i] = deepCopyNBTValue(e)
		}
		return list
	case []byte:
		b := make([]byte, len(t))
		copy(b, t)
		return b
	case []int32:
		a := make([]int32, len(t))
		copy(a, t)
		return a
	case []int64:
		a := make([]int64, len(t))
		copy(a, t)
		return a
	default:
		return v
	}
}

// PropertiesToStateStr 将方块状态序列化为命令格式的状态字符串，
// 形如 ["direction"=1,"open_bit"=false]，键按字典序排列
func PropertiesToStateStr(properties map[string]any) string {
	if len(properties) == 0 {
		return "[]"
	}

	keys := make([]string, 0, len(properties))
	for k := range properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('[')
	for idx, k := range keys {
		if idx > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(k))
		b.WriteByte('=')
		b.WriteString(formatStateValue(properties[k]))
	}
	b.WriteByte(']')
	return b.String()
}

func formatStateValue(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case int8, int16, int32, int64, int:
		return fmt.Sprintf("%d", t)
	case uint8, uint16, uint32, uint64, uint:
		return fmt.Sprintf("%d", t)
	case float32:
		if float32(int64(t)) == t {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case float64:
		if float64(int64(t)) == t {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	case string:
		return strconv.Quote(t)
	default:
		return strconv.Quote(fmt.Sprint(v))
	}
}
