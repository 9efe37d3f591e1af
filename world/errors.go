package world

import "fmt"

// ValidationError 方块名称或方块状态未通过注册表校验。
// Suggestion 非空时表示注册表中最接近的已知方块名
type ValidationError struct {
	Field      string
	Value      string
	Suggestion string
}

// Error ...
func (e *ValidationError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("未知的%s: %q，是否想用 %q", e.Field, e.Value, e.Suggestion)
	}
	return fmt.Sprintf("未知的%s: %q", e.Field, e.Value)
}

// AccessError 世界读写失败，包括坐标越界与底层存储错误
type AccessError struct {
	Op  string
	Err error
}

// Error ...
func (e *AccessError) Error() string {
	return fmt.Sprintf("%s失败: %v", e.Op, e.Err)
}

// Unwrap ...
func (e *AccessError) Unwrap() error {
	return e.Err
}
