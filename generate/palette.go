// Package generate 把图片转换为 setblock 脚本:
// 像素画按最近色匹配到建材方块, 灰度图按亮度生成高度图地形
package generate

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteEntry 一个可用作像素的方块及其代表色
type PaletteEntry struct {
	Block string
	R     uint8
	G     uint8
	B     uint8
}

// builtinEntries 内置调色板, 取 16 色混凝土与 16 色羊毛的贴图平均色
var builtinEntries = []PaletteEntry{
	{"minecraft:white_concrete", 207, 213, 214},
	{"minecraft:orange_concrete", 224, 97, 0},
	{"minecraft:magenta_concrete", 169, 48, 159},
	{"minecraft:light_blue_concrete", 35, 137, 198},
	{"minecraft:yellow_concrete", 240, 175, 13},
	{"minecraft:lime_concrete", 94, 168, 24},
	{"minecraft:pink_concrete", 213, 101, 142},
	{"minecraft:gray_concrete", 54, 57, 61},
	{"minecraft:light_gray_concrete", 125, 125, 115},
	{"minecraft:cyan_concrete", 21, 119, 136},
	{"minecraft:purple_concrete", 100, 31, 156},
	{"minecraft:blue_concrete", 44, 46, 143},
	{"minecraft:brown_concrete", 96, 59, 31},
	{"minecraft:green_concrete", 73, 91, 36},
	{"minecraft:red_concrete", 142, 32, 32},
	{"minecraft:black_concrete", 8, 10, 15},
	{"minecraft:white_wool", 233, 236, 236},
	{"minecraft:orange_wool", 240, 118, 19},
	{"minecraft:magenta_wool", 189, 68, 179},
	{"minecraft:light_blue_wool", 58, 175, 217},
	{"minecraft:yellow_wool", 248, 197, 39},
	{"minecraft:lime_wool", 112, 185, 25},
	{"minecraft:pink_wool", 237, 141, 172},
	{"minecraft:gray_wool", 62, 68, 71},
	{"minecraft:light_gray_wool", 142, 142, 134},
	{"minecraft:cyan_wool", 21, 137, 145},
	{"minecraft:purple_wool", 121, 42, 172},
	{"minecraft:blue_wool", 53, 57, 157},
	{"minecraft:brown_wool", 114, 71, 40},
	{"minecraft:green_wool", 84, 109, 27},
	{"minecraft:red_wool", 160, 39, 34},
	{"minecraft:black_wool", 20, 21, 25},
}

// Palette 一组候选方块, 颜色预转换到 Lab 空间以加速最近色查询
type Palette struct {
	entries []PaletteEntry
	colors  []colorful.Color
}

// NewPalette 由给定条目构造调色板
func NewPalette(entries []PaletteEntry) *Palette {
	p := &Palette{
		entries: entries,
		colors:  make([]colorful.Color, len(entries)),
	}
	for i, e := range entries {
		p.colors[i] = colorful.Color{
			R: float64(e.R) / 255.0,
			G: float64(e.G) / 255.0,
			B: float64(e.B) / 255.0,
		}
	}
	return p
}

// DefaultPalette 全部内置方块
func DefaultPalette() *Palette {
	return NewPalette(builtinEntries)
}

// PaletteByNames 按名称筛选内置调色板。
// 名称可以是完整方块名, 也可以是 "wool" 或 "concrete" 这样的材质族
func PaletteByNames(names []string) (*Palette, error) {
	if len(names) == 0 {
		return DefaultPalette(), nil
	}
	selected := make([]PaletteEntry, 0, len(builtinEntries))
	for _, e := range builtinEntries {
		for _, name := range names {
			if e.Block == name || e.Block == "minecraft:"+name || strings.HasSuffix(e.Block, "_"+name) {
				selected = append(selected, e)
				break
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("没有匹配的方块: %s", strings.Join(names, ", "))
	}
	return NewPalette(selected), nil
}

// Len 调色板中的方块数
func (p *Palette) Len() int {
	return len(p.entries)
}

// Nearest 在 Lab 色彩空间中找与目标色感知距离最小的方块
func (p *Palette) Nearest(target color.NRGBA) string {
	targetColor := colorful.Color{
		R: float64(target.R) / 255.0,
		G: float64(target.G) / 255.0,
		B: float64(target.B) / 255.0,
	}
	minDistance := math.Inf(1)
	closest := p.entries[0].Block
	for i, c := range p.colors {
		distance := targetColor.DistanceLab(c)
		if distance < minDistance {
			minDistance = distance
			closest = p.entries[i].Block
		}
	}
	return closest
}
