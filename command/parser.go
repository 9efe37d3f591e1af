package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse 以默认配置解析一行命令文本
func Parse(line string) (Command, error) {
	return ParseWithOptions(line, DefaultOptions())
}

// ParseWithOptions 解析一行命令文本。
// 行首允许一个命令标记 /，语法错误的字符偏移始终按原始行计算
func ParseWithOptions(line string, opts Options) (Command, error) {
	p := &parser{line: []rune(line), opts: opts}
	p.skipSpaces()
	if !p.eof() && p.peek() == '/' {
		p.pos++
	}
	p.skipSpaces()

	start := p.pos
	verb := p.readRun(isNotSpace)
	switch verb {
	case "setblock":
		return p.parseSetblock()
	case "fill":
		return p.parseFill()
	case "":
		return nil, p.syntaxError(p.pos, "命令不能为空")
	default:
		return nil, p.syntaxError(start, "未知的命令: %q", verb)
	}
}

// parser 单行命令的扫描器，pos 为当前符文下标（从 0 开始）
type parser struct {
	line []rune
	pos  int
	opts Options
}

func (p *parser) parseSetblock() (Command, error) {
	pos, err := p.readPosition()
	if err != nil {
		return nil, err
	}
	blockSpec, err := p.readBlockSpec()
	if err != nil {
		return nil, err
	}
	mode, _, err := p.readMode(false)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return &Setblock{Pos: pos, Block: blockSpec, Mode: mode}, nil
}

func (p *parser) parseFill() (Command, error) {
	from, err := p.readPosition()
	if err != nil {
		return nil, err
	}
	to, err := p.readPosition()
	if err != nil {
		return nil, err
	}
	blockSpec, err := p.readBlockSpec()
	if err != nil {
		return nil, err
	}
	mode, explicit, err := p.readMode(true)
	if err != nil {
		return nil, err
	}
	var filter *BlockSpec
	// 过滤方块只允许跟在显式的 replace 之后
	if explicit && mode == ModeReplace {
		p.skipSpaces()
		if !p.eof() {
			filter, err = p.readBlockSpec()
			if err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return &Fill{From: from, To: to, Block: blockSpec, Mode: mode, Filter: filter}, nil
}

// readPosition 读取三个坐标
func (p *parser) readPosition() (Position, error) {
	x, err := p.readCoordinate()
	if err != nil {
		return Position{}, err
	}
	y, err := p.readCoordinate()
	if err != nil {
		return Position{}, err
	}
	z, err := p.readCoordinate()
	if err != nil {
		return Position{}, err
	}
	return Position{X: x, Y: y, Z: z}, nil
}

// readCoordinate 读取一个坐标：带符号整数，或 ~ 后跟可选的带符号整数。
// 单独的 ~ 表示相对偏移 0
func (p *parser) readCoordinate() (Coordinate, error) {
	p.skipSpaces()
	if p.eof() {
		return Coordinate{}, p.syntaxError(p.pos, "缺少坐标")
	}
	start := p.pos
	relative := false
	if p.peek() == '~' {
		relative = true
		p.pos++
	}
	numStart := p.pos
	if !p.eof() && (p.peek() == '+' || p.peek() == '-') {
		p.pos++
	}
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	token := string(p.line[numStart:p.pos])

	// 坐标后必须是空白或行尾
	delimited := p.eof() || isSpace(p.peek())

	if token == "" {
		if relative && delimited {
			return Coordinate{Relative: true}, nil
		}
		return Coordinate{}, p.coordinateError(start)
	}
	if !delimited {
		return Coordinate{}, p.coordinateError(start)
	}
	value, err := strconv.Atoi(token)
	if err != nil {
		return Coordinate{}, p.coordinateError(start)
	}
	return Coordinate{Value: value, Relative: relative}, nil
}

// coordinateError 取出 start 处完整的词，构造坐标错误
func (p *parser) coordinateError(start int) error {
	p.pos = start
	word := p.readRun(isNotSpace)
	return p.syntaxError(start, "坐标无效: %q", word)
}

// readBlockSpec 读取方块描述：[命名空间:]方块名[状态列表]{NBT数据}
func (p *parser) readBlockSpec() (*BlockSpec, error) {
	p.skipSpaces()
	if p.eof() {
		return nil, p.syntaxError(p.pos, "缺少方块名称")
	}
	start := p.pos
	first := p.readRun(isNamespaceRune)
	if first == "" {
		p.pos = start
		word := p.readRun(isNotSpace)
		return nil, p.syntaxError(start, "方块名称无效: %q", word)
	}

	b := &BlockSpec{Namespace: p.opts.DefaultNamespace, ID: first}
	if !p.eof() && p.peek() == ':' {
		p.pos++
		nameStart := p.pos
		name := p.readRun(isIDRune)
		if name == "" {
			if p.eof() || isSpace(p.peek()) {
				return nil, p.syntaxError(nameStart, "命名空间后缺少方块名称")
			}
			word := p.readRun(isNotSpace)
			return nil, p.syntaxError(nameStart, "方块名称无效: %q", word)
		}
		b.Namespace = first
		b.ID = name
		if !p.eof() && p.peek() == ':' {
			return nil, p.syntaxError(p.pos, "方块名称中出现多余的 ':'")
		}
	} else {
		// 连字符只允许出现在命名空间里
		for i, r := range []rune(first) {
			if r == '-' {
				return nil, p.syntaxError(start+i, "方块名称包含非法字符 '-'")
			}
		}
	}

	if !p.eof() && p.peek() == '[' {
		if err := p.readStates(b); err != nil {
			return nil, err
		}
	}
	if !p.eof() && p.peek() == '{' {
		nbt, err := p.readRawNBT()
		if err != nil {
			return nil, err
		}
		b.NBT = nbt
	}
	return b, nil
}

// readStates 读取状态列表，进入时当前字符为 '['
func (p *parser) readStates(b *BlockSpec) error {
	p.pos++
	p.skipSpaces()
	if !p.eof() && p.peek() == ']' {
		p.pos++
		return nil
	}
	for {
		p.skipSpaces()
		if p.eof() {
			return p.syntaxError(p.pos, "状态列表未闭合")
		}
		keyStart := p.pos
		key := p.readRun(isIDRune)
		if key == "" {
			p.pos = keyStart
			word := p.readRun(func(r rune) bool { return !isSpace(r) && r != '=' && r != ',' && r != ']' })
			return p.syntaxError(keyStart, "状态键无效: %q", word)
		}
		p.skipSpaces()
		if p.eof() || p.peek() != '=' {
			return p.syntaxError(p.pos, "状态键后缺少 '='")
		}
		p.pos++
		p.skipSpaces()
		value, err := p.readStateValue()
		if err != nil {
			return err
		}
		b.SetState(key, value)
		p.skipSpaces()
		if p.eof() {
			return p.syntaxError(p.pos, "状态列表未闭合")
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return nil
		default:
			return p.syntaxError(p.pos, "状态之间缺少 ',' 或 ']'")
		}
	}
}

// readStateValue 按 布尔 → 整数 → 字符串 的优先级解析一个状态值，
// 带引号的值总是字符串
func (p *parser) readStateValue() (any, error) {
	if p.eof() {
		return nil, p.syntaxError(p.pos, "缺少状态值")
	}
	if p.peek() == '"' {
		return p.readQuotedString()
	}
	start := p.pos
	token := p.readRun(isBareValueRune)
	if token == "" {
		return nil, p.syntaxError(start, "状态值无效")
	}
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if i, err := strconv.ParseInt(token, 10, 32); err == nil {
		return int32(i), nil
	}
	return token, nil
}

// readQuotedString 读取双引号字符串，支持 \" 与 \\ 转义
func (p *parser) readQuotedString() (string, error) {
	start := p.pos
	p.pos++
	var sb strings.Builder
	for !p.eof() {
		r := p.peek()
		p.pos++
		switch r {
		case '"':
			return sb.String(), nil
		case '\\':
			if p.eof() {
				return "", p.syntaxError(start, "字符串未闭合")
			}
			esc := p.peek()
			p.pos++
			switch esc {
			case '"', '\\':
				sb.WriteRune(esc)
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return "", p.syntaxError(start, "字符串未闭合")
}

// readRawNBT 原样截取花括号包裹的 SNBT 文本，括号配对时跳过字符串字面量
func (p *parser) readRawNBT() (string, error) {
	start := p.pos
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				p.pos++
				return string(p.line[start:p.pos]), nil
			}
		case '"', '\'':
			if err := p.skipQuoted(p.peek()); err != nil {
				return "", err
			}
			continue
		}
		p.pos++
	}
	return "", p.syntaxError(start, "NBT 数据未闭合")
}

// skipQuoted 跳过一段字符串字面量，进入时当前字符为引号
func (p *parser) skipQuoted(quote rune) error {
	start := p.pos
	p.pos++
	for !p.eof() {
		r := p.peek()
		p.pos++
		if r == '\\' {
			if !p.eof() {
				p.pos++
			}
			continue
		}
		if r == quote {
			return nil
		}
	}
	return p.syntaxError(start, "字符串未闭合")
}

// readMode 读取可选的模式词，返回模式与是否显式给出
func (p *parser) readMode(fill bool) (Mode, bool, error) {
	p.skipSpaces()
	if p.eof() {
		return p.opts.DefaultMode, false, nil
	}
	start := p.pos
	word := p.readRun(isNotSpace)
	switch word {
	case "replace":
		return ModeReplace, true, nil
	case "destroy":
		return ModeDestroy, true, nil
	case "keep":
		return ModeKeep, true, nil
	case "hollow", "outline":
		if !fill {
			return 0, false, p.syntaxError(start, "模式 %q 仅适用于 fill 命令", word)
		}
		if word == "hollow" {
			return ModeHollow, true, nil
		}
		return ModeOutline, true, nil
	default:
		if fill {
			return 0, false, p.syntaxError(start, "未知的填充模式: %q", word)
		}
		return 0, false, p.syntaxError(start, "未知的放置模式: %q", word)
	}
}

// expectEnd 确认整行已消费完毕
func (p *parser) expectEnd() error {
	p.skipSpaces()
	if !p.eof() {
		return p.syntaxError(p.pos, "命令末尾有多余的内容: %q", string(p.line[p.pos:]))
	}
	return nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.line)
}

func (p *parser) peek() rune {
	return p.line[p.pos]
}

func (p *parser) skipSpaces() {
	for !p.eof() && isSpace(p.peek()) {
		p.pos++
	}
}

// readRun 读取一段连续满足 valid 的字符
func (p *parser) readRun(valid func(rune) bool) string {
	start := p.pos
	for !p.eof() && valid(p.peek()) {
		p.pos++
	}
	return string(p.line[start:p.pos])
}

// syntaxError 在给定符文下标处构造语法错误，偏移转为从 1 开始
func (p *parser) syntaxError(pos int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos + 1, Message: fmt.Sprintf(format, args...)}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNotSpace(r rune) bool {
	return !isSpace(r)
}

// isIDRune 方块名与状态键允许的字符
func isIDRune(r rune) bool {
	return r >= 'a' && r <= 'z' || isDigit(r) || r == '_' || r == '/'
}

// isNamespaceRune 命名空间在方块名字符集之外还允许连字符
func isNamespaceRune(r rune) bool {
	return isIDRune(r) || r == '-'
}

// isBareValueRune 不带引号的状态值允许的字符
func isBareValueRune(r rune) bool {
	return isIDRune(r) || r == '+' || r == '-'
}
