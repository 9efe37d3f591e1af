// Package script 提供建筑脚本的读写、批量执行与坐标改写。
// 脚本为 UTF-8 文本，每行一条命令，空行与 # 开头的行视为注释保留
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/suibian-sun/SunScript/command"
)

// Line 脚本中的一行。空行、注释行与解析失败的行 Cmd 为 nil
type Line struct {
	// Number 行号，从 1 开始
	Number int
	// Text 去除首尾空白后的原文
	Text string
	Cmd  command.Command
	// Err 该行解析失败时的语法错误
	Err error
}

// IsComment 是否为空行或注释行
func (l Line) IsComment() bool {
	return l.Text == "" || strings.HasPrefix(l.Text, "#")
}

// Script 一个完整的建筑脚本，保留注释与空行以便原样改写输出
type Script struct {
	Lines []Line
}

// Load 从文件加载脚本，.br 后缀的文件先经 brotli 解压
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开脚本失败: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".br") {
		r = brotli.NewReader(file)
	}
	return Read(r)
}

// Read 从 r 逐行解析脚本。解析失败的行不会中断加载，
// 错误记录在对应的 Line.Err 上由调用方决定如何处理
func Read(r io.Reader) (*Script, error) {
	s := &Script{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	number := 0
	for scanner.Scan() {
		number++
		line := Line{Number: number, Text: strings.TrimSpace(scanner.Text())}
		if !line.IsComment() {
			line.Cmd, line.Err = command.Parse(line.Text)
		}
		s.Lines = append(s.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取脚本失败: %w", err)
	}
	return s, nil
}

// ParseString 解析一段脚本文本，便于测试与交互模式
func ParseString(text string) (*Script, error) {
	return Read(strings.NewReader(text))
}

// Commands 全部成功解析的命令，顺序与脚本内一致
func (s *Script) Commands() []command.Command {
	cmds := make([]command.Command, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.Cmd != nil {
			cmds = append(cmds, line.Cmd)
		}
	}
	return cmds
}

// CommandCount 成功解析的命令数
func (s *Script) CommandCount() int {
	return len(s.Commands())
}

// Save 把脚本写入文件，.br 后缀的文件经 brotli 压缩
func Save(s *Script, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建脚本文件失败: %w", err)
	}
	defer file.Close()

	var w io.Writer = file
	if strings.HasSuffix(path, ".br") {
		bw := brotli.NewWriter(file)
		defer bw.Close()
		w = bw
	}
	_, err = io.WriteString(w, s.String())
	if err != nil {
		return fmt.Errorf("写入脚本失败: %w", err)
	}
	return nil
}

// String 还原为脚本文本，每行以换行符结尾。
// 解析成功的命令行输出其规范形式，其余行原样输出
func (s *Script) String() string {
	var sb strings.Builder
	for _, line := range s.Lines {
		if line.Cmd != nil {
			sb.WriteString(line.Cmd.String())
		} else {
			sb.WriteString(line.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
