package command

import "fmt"

// SyntaxError 命令文本不符合语法时返回的错误。
// Pos 为首个无法接受的字符在整行中的偏移，从 1 开始按符文计数，
// 行首的命令标记 / 也计入偏移
type SyntaxError struct {
	Pos     int
	Message string
}

// Error ...
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("语法错误(第 %d 个字符): %s", e.Pos, e.Message)
}
