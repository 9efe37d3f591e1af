package command

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeSNBT 将命令中携带的 SNBT 文本解码为 NBT 复合标签。
// 数字后缀 b/s/l/f/d 分别对应 byte/int16/int64/float32/float64，
// 无后缀的整数记为 int32，无后缀的小数记为 float64，
// true/false 与基岩版存档一致记为 byte 1/0
func DecodeSNBT(s string) (map[string]any, error) {
	d := &snbtDecoder{src: []rune(s)}
	d.skipSpaces()
	if d.eof() || d.peek() != '{' {
		return nil, fmt.Errorf("SNBT 必须以 '{' 开头")
	}
	m, err := d.readCompound()
	if err != nil {
		return nil, err
	}
	d.skipSpaces()
	if !d.eof() {
		return nil, fmt.Errorf("SNBT 末尾有多余的内容: %q", string(d.src[d.pos:]))
	}
	return m, nil
}

type snbtDecoder struct {
	src []rune
	pos int
}

func (d *snbtDecoder) eof() bool {
	return d.pos >= len(d.src)
}

func (d *snbtDecoder) peek() rune {
	return d.src[d.pos]
}

func (d *snbtDecoder) skipSpaces() {
	for !d.eof() {
		switch d.peek() {
		case ' ', '\t', '\r', '\n':
			d.pos++
		default:
			return
		}
	}
}

// readCompound 读取复合标签，进入时当前字符为 '{'
func (d *snbtDecoder) readCompound() (map[string]any, error) {
	d.pos++
	m := map[string]any{}
	d.skipSpaces()
	if !d.eof() && d.peek() == '}' {
		d.pos++
		return m, nil
	}
	for {
		d.skipSpaces()
		key, err := d.readKey()
		if err != nil {
			return nil, err
		}
		d.skipSpaces()
		if d.eof() || d.peek() != ':' {
			return nil, fmt.Errorf("键 %q 后缺少 ':'", key)
		}
		d.pos++
		d.skipSpaces()
		value, err := d.readValue()
		if err != nil {
			return nil, err
		}
		m[key] = value
		d.skipSpaces()
		if d.eof() {
			return nil, fmt.Errorf("复合标签未闭合")
		}
		switch d.peek() {
		case ',':
			d.pos++
		case '}':
			d.pos++
			return m, nil
		default:
			return nil, fmt.Errorf("复合标签中缺少 ',' 或 '}'")
		}
	}
}

func (d *snbtDecoder) readKey() (string, error) {
	if d.eof() {
		return "", fmt.Errorf("复合标签未闭合")
	}
	if d.peek() == '"' || d.peek() == '\'' {
		return d.readQuoted()
	}
	key := d.readRun(isSNBTBareRune)
	if key == "" {
		return "", fmt.Errorf("标签键无效")
	}
	return key, nil
}

func (d *snbtDecoder) readValue() (any, error) {
	if d.eof() {
		return nil, fmt.Errorf("缺少标签值")
	}
	switch d.peek() {
	case '{':
		return d.readCompound()
	case '[':
		return d.readListOrArray()
	case '"', '\'':
		return d.readQuoted()
	}
	token := d.readRun(isSNBTBareRune)
	if token == "" {
		return nil, fmt.Errorf("标签值无效: %q", string(d.peek()))
	}
	return parseSNBTScalar(token)
}

// readListOrArray 读取列表或 [B;...]/[I;...]/[L;...] 数组，进入时当前字符为 '['
func (d *snbtDecoder) readListOrArray() (any, error) {
	d.pos++
	d.skipSpaces()

	// 数组前缀
	if d.pos+1 < len(d.src) && d.src[d.pos+1] == ';' {
		switch d.peek() {
		case 'B':
			d.pos += 2
			return d.readByteArray()
		case 'I':
			d.pos += 2
			return d.readInt32Array()
		case 'L':
			d.pos += 2
			return d.readInt64Array()
		}
	}

	list := []any{}
	d.skipSpaces()
	if !d.eof() && d.peek() == ']' {
		d.pos++
		return list, nil
	}
	for {
		d.skipSpaces()
		value, err := d.readValue()
		if err != nil {
			return nil, err
		}
		list = append(list, value)
		d.skipSpaces()
		if d.eof() {
			return nil, fmt.Errorf("列表未闭合")
		}
		switch d.peek() {
		case ',':
			d.pos++
		case ']':
			d.pos++
			return list, nil
		default:
			return nil, fmt.Errorf("列表中缺少 ',' 或 ']'")
		}
	}
}

func (d *snbtDecoder) readByteArray() ([]byte, error) {
	values, err := d.readArrayInts("字节数组")
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(values))
	for i, v := range values {
		out[i] = byte(v)
	}
	return out, nil
}

func (d *snbtDecoder) readInt32Array() ([]int32, error) {
	values, err := d.readArrayInts("整数数组")
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out, nil
}

func (d *snbtDecoder) readInt64Array() ([]int64, error) {
	return d.readArrayInts("长整数数组")
}

func (d *snbtDecoder) readArrayInts(kind string) ([]int64, error) {
	var values []int64
	d.skipSpaces()
	if !d.eof() && d.peek() == ']' {
		d.pos++
		return values, nil
	}
	for {
		d.skipSpaces()
		token := d.readRun(isSNBTBareRune)
		if token == "" {
			return nil, fmt.Errorf("%s元素无效", kind)
		}
		token = strings.TrimRight(token, "bBlL")
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s元素无效: %q", kind, token)
		}
		values = append(values, v)
		d.skipSpaces()
		if d.eof() {
			return nil, fmt.Errorf("%s未闭合", kind)
		}
		switch d.peek() {
		case ',':
			d.pos++
		case ']':
			d.pos++
			return values, nil
		default:
			return nil, fmt.Errorf("%s中缺少 ',' 或 ']'", kind)
		}
	}
}

// readQuoted 读取引号包裹的字符串，进入时当前字符为引号
func (d *snbtDecoder) readQuoted() (string, error) {
	quote := d.peek()
	d.pos++
	var sb strings.Builder
	for !d.eof() {
		r := d.peek()
		d.pos++
		switch r {
		case quote:
			return sb.String(), nil
		case '\\':
			if d.eof() {
				return "", fmt.Errorf("字符串未闭合")
			}
			esc := d.peek()
			d.pos++
			switch esc {
			case '"', '\'', '\\':
				sb.WriteRune(esc)
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
		default:
			sb.WriteRune(r)
		}
	}
	return "", fmt.Errorf("字符串未闭合")
}

func (d *snbtDecoder) readRun(valid func(rune) bool) string {
	start := d.pos
	for !d.eof() && valid(d.peek()) {
		d.pos++
	}
	return string(d.src[start:d.pos])
}

// parseSNBTScalar 解析不带引号的标量：布尔、带类型后缀的数字或裸字符串
func parseSNBTScalar(token string) (any, error) {
	switch token {
	case "true":
		return byte(1), nil
	case "false":
		return byte(0), nil
	}

	if len(token) > 1 {
		suffix := token[len(token)-1]
		body := token[:len(token)-1]
		switch suffix {
		case 'b', 'B':
			if v, err := strconv.ParseInt(body, 10, 8); err == nil {
				return byte(v), nil
			}
		case 's', 'S':
			if v, err := strconv.ParseInt(body, 10, 16); err == nil {
				return int16(v), nil
			}
		case 'l', 'L':
			if v, err := strconv.ParseInt(body, 10, 64); err == nil {
				return v, nil
			}
		case 'f', 'F':
			if v, err := strconv.ParseFloat(body, 32); err == nil {
				return float32(v), nil
			}
		case 'd', 'D':
			if v, err := strconv.ParseFloat(body, 64); err == nil {
				return v, nil
			}
		}
	}

	if v, err := strconv.ParseInt(token, 10, 32); err == nil {
		return int32(v), nil
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return v, nil
	}
	// 基岩版允许裸字符串值
	return token, nil
}

// isSNBTBareRune 不带引号的键与标量允许的字符
func isSNBTBareRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '_' || r == '-' || r == '+' || r == '.'
}
