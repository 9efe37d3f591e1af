package utils

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ANSI颜色代码
const (
	Reset           = "\033[0m"
	Red             = "\033[31m"
	Green           = "\033[32m"
	Yellow          = "\033[33m"
	Blue            = "\033[34m"
	Magenta         = "\033[35m"
	Cyan            = "\033[36m"
	White           = "\033[37m"
	Bold            = "\033[1m"
	BackgroundReset = "\033[49m"
)

// RGBColor 表示RGB颜色
type RGBColor struct {
	R, G, B uint8
}

// RGBToANSIColor 将RGB颜色转换为ANSI颜色代码
func RGBToANSIColor(r, g, b uint8) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

// RGBToANSIBackground 将RGB颜色转换为ANSI背景色代码
func RGBToANSIBackground(r, g, b uint8) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", r, g, b)
}

// ColoredPrint 使用指定颜色输出文本
func ColoredPrint(colorCode, text string, useColor bool) string {
	if useColor {
		return fmt.Sprintf("%s%s%s", colorCode, text, Reset)
	}
	return text
}

// ColoredPrintf 使用颜色格式化输出
func ColoredPrintf(colorCode, format string, useColor bool, a ...interface{}) string {
	if useColor {
		return fmt.Sprintf("%s%s%s", colorCode, fmt.Sprintf(format, a...), Reset)
	}
	return fmt.Sprintf(format, a...)
}

// GenerateGradientColors 生成从start到end的渐变颜色序列
func GenerateGradientColors(start, end RGBColor, steps int) []RGBColor {
	if steps <= 0 {
		return []RGBColor{}
	}
	if steps == 1 {
		return []RGBColor{start}
	}

	colors := make([]RGBColor, steps)
	for i := 0; i < steps; i++ {
		ratio := float64(i) / float64(steps-1)
		r := uint8(float64(start.R) + ratio*float64(end.R-start.R))
		g := uint8(float64(start.G) + ratio*float64(end.G-start.G))
		b := uint8(float64(start.B) + ratio*float64(end.B-start.B))
		colors[i] = RGBColor{R: r, G: g, B: b}
	}
	return colors
}

// GetGradientColors256ColorMode 取 256 色模式下的蓝紫粉渐变序列, 用于 logo 等多行文本
func GetGradientColors256ColorMode(numColors int, useColor bool) []string {
	if !useColor {
		return make([]string, numColors)
	}

	gradientColors := []string{
		"\033[38;5;27m",  // 深蓝
		"\033[38;5;33m",  // 蓝色
		"\033[38;5;39m",  // 亮蓝
		"\033[38;5;45m",  // 青蓝
		"\033[38;5;51m",  // 青色
		"\033[38;5;50m",  // 蓝绿
		"\033[38;5;49m",  // 绿青
		"\033[38;5;48m",  // 青色
		"\033[38;5;129m", // 紫色
		"\033[38;5;165m", // 亮紫
		"\033[38;5;201m", // 粉紫
		"\033[38;5;207m", // 粉色
		"\033[38;5;213m", // 亮粉
		"\033[38;5;219m", // 浅粉
	}

	if numColors <= len(gradientColors) {
		return gradientColors[:numColors]
	}

	result := make([]string, numColors)
	for i := 0; i < numColors; i++ {
		pos := float64(i) / float64(numColors-1) * float64(len(gradientColors)-1)
		idx := int(pos)
		if idx >= len(gradientColors) {
			idx = len(gradientColors) - 1
		}
		result[i] = gradientColors[idx]
	}

	return result
}

// PrintGradientText 打印渐变色文本
func PrintGradientText(text string, startColor, endColor RGBColor, useColor bool) {
	if !useColor || len(text) == 0 {
		fmt.Print(text)
		return
	}

	runes := []rune(text)
	gradientColors := GenerateGradientColors(startColor, endColor, len(runes))
	for i, char := range runes {
		colorCode := RGBToANSIColor(gradientColors[i].R, gradientColors[i].G, gradientColors[i].B)
		fmt.Printf("%s%c%s", colorCode, char, Reset)
	}
}

// PrintColoredTextBlock 使用彩色背景打印文本块
func PrintColoredTextBlock(text string, bgColor RGBColor, useColor bool) {
	if useColor {
		bgCode := RGBToANSIBackground(bgColor.R, bgColor.G, bgColor.B)
		fmt.Printf("%s%s%s", bgCode, text, BackgroundReset)
	} else {
		fmt.Print(text)
	}
}

// GetUserInput 获取用户输入，带有默认值
func GetUserInput(prompt string, defaultValue string, useColor bool) string {
	if useColor {
		startColor := RGBColor{R: 135, G: 206, B: 250}
		endColor := RGBColor{R: 70, G: 130, B: 180}
		PrintGradientText(prompt, startColor, endColor, useColor)
	} else {
		fmt.Print(prompt)
	}

	if defaultValue != "" {
		if useColor {
			gray := RGBColor{R: 128, G: 128, B: 128}
			defaultText := fmt.Sprintf(" (默认: %s)", defaultValue)
			PrintColoredTextBlock(defaultText, gray, useColor)
		} else {
			fmt.Printf(" (默认: %s)", defaultValue)
		}
	}

	if useColor {
		fmt.Print(Reset)
	}
	fmt.Print(": ")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	input := strings.TrimSpace(scanner.Text())

	if input == "" && defaultValue != "" {
		return defaultValue
	}

	return input
}

// GetUserInputInt 获取用户输入的整数，带有默认值
func GetUserInputInt(prompt string, defaultValue int, useColor bool) int {
	for {
		inputStr := GetUserInput(prompt, strconv.Itoa(defaultValue), useColor)

		if inputStr == "" {
			return defaultValue
		}

		value, err := strconv.Atoi(inputStr)
		if err != nil {
			if useColor {
				red := RGBColor{R: 255, G: 0, B: 0}
				PrintColoredTextBlock("输入无效，请输入一个整数\n", red, useColor)
			} else {
				fmt.Println("输入无效，请输入一个整数")
			}
			continue
		}

		return value
	}
}

// GetUserInputBool 获取用户输入的布尔值
func GetUserInputBool(prompt string, defaultValue bool, useColor bool) bool {
	defaultStr := "n"
	if defaultValue {
		defaultStr = "y"
	}

	for {
		input := GetUserInput(prompt, defaultStr, useColor)
		input = strings.ToLower(input)

		switch input {
		case "y", "yes", "是", "1", "true", "t":
			return true
		case "n", "no", "否", "0", "false", "f", "":
			return defaultValue
		default:
			if useColor {
				red := RGBColor{R: 255, G: 0, B: 0}
				PrintColoredTextBlock("输入无效，请输入 y(是) 或 n(否)\n", red, useColor)
			} else {
				fmt.Println("输入无效，请输入 y(是) 或 n(否)")
			}
		}
	}
}

// PrintSectionTitle 打印带渐变色的章节标题
func PrintSectionTitle(title string, useColor bool) {
	if useColor {
		startColor := RGBColor{R: 50, G: 205, B: 50}
		endColor := RGBColor{R: 34, G: 139, B: 34}
		fmt.Println()
		PrintGradientText("════════════════════════════════════════", startColor, endColor, useColor)
		fmt.Println()
		PrintGradientText(title, startColor, endColor, useColor)
		fmt.Println()
		PrintGradientText("════════════════════════════════════════", startColor, endColor, useColor)
		fmt.Println()
	} else {
		fmt.Printf("\n════════════════════════════════════════\n")
		fmt.Printf("%s\n", title)
		fmt.Printf("════════════════════════════════════════\n\n")
	}
}
