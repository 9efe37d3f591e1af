package generate

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/suibian-sun/SunScript/script"
)

// HeightmapOptions 高度图地形生成参数
type HeightmapOptions struct {
	// Width Length 地形在 x/z 方向的尺寸, 任一为 0 时取原图尺寸
	Width  int
	Length int
	// MaxHeight 纯白像素对应的柱高, 默认 32
	MaxHeight int
	// Block 柱体方块, 默认 minecraft:stone
	Block string
	// TopBlock 柱顶表层方块, 默认 minecraft:grass_block
	TopBlock string
	// ShowProgress 逐列显示进度条
	ShowProgress bool
}

// Heightmap 把灰度图转换为柱状地形脚本。
// 每个像素按亮度映射为一根 1 到 MaxHeight 格高的方块柱, 顶面铺表层方块
func Heightmap(img image.Image, opts HeightmapOptions) (*script.Script, error) {
	if opts.MaxHeight <= 0 {
		opts.MaxHeight = 32
	}
	if opts.Block == "" {
		opts.Block = "minecraft:stone"
	}
	if opts.TopBlock == "" {
		opts.TopBlock = "minecraft:grass_block"
	}
	width, length := fitSize(img, opts.Width, opts.Length)
	pixels := resample(img, width, length)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.Default(int64(width*length), "⛰️  生成地形")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# 高度图地形 %d × %d, 最大柱高 %d\n", width, length, opts.MaxHeight))
	sb.WriteString("# 基准点为地形西北角的底层\n")

	for z := 0; z < length; z++ {
		for x := 0; x < width; x++ {
			h := columnHeight(pixels.NRGBAAt(x, z), opts.MaxHeight)
			if h > 1 {
				sb.WriteString(fmt.Sprintf("fill ~%d ~0 ~%d ~%d ~%d ~%d %s\n", x, z, x, h-2, z, opts.Block))
			}
			sb.WriteString(fmt.Sprintf("setblock ~%d ~%d ~%d %s\n", x, h-1, z, opts.TopBlock))
			if bar != nil {
				bar.Add(1)
			}
		}
	}
	return script.ParseString(sb.String())
}

// HeightmapFile 读取图片文件并生成地形脚本
func HeightmapFile(imagePath string, opts HeightmapOptions) (*script.Script, error) {
	img, err := LoadImage(imagePath)
	if err != nil {
		return nil, err
	}
	return Heightmap(img, opts)
}

// columnHeight 按感知亮度把像素映射到 [1, maxHeight]
func columnHeight(c color.NRGBA, maxHeight int) int {
	// BT.601 亮度系数
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	h := 1 + lum*(maxHeight-1)/255
	if h > maxHeight {
		h = maxHeight
	}
	return h
}
