package generate

import (
	"fmt"
	"image"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/suibian-sun/SunScript/script"
)

// PixelArtOptions 像素画生成参数
type PixelArtOptions struct {
	// Width Height 目标尺寸(方块), 任一为 0 时取原图尺寸
	Width  int
	Height int
	// Palette 为 nil 时使用内置的羊毛加混凝土调色板
	Palette *Palette
	// Flat 平铺在地面(x/z 平面), 默认竖立为墙(x/y 平面)
	Flat bool
	// ShowProgress 逐像素显示进度条
	ShowProgress bool
}

// PixelArtFile 读取图片文件并生成像素画脚本
func PixelArtFile(imagePath string, opts PixelArtOptions) (*script.Script, error) {
	img, err := LoadImage(imagePath)
	if err != nil {
		return nil, err
	}
	return PixelArt(img, opts)
}

// PixelArt 把图片转换为相对坐标的 setblock 脚本。
// 基准点是像素画的西北下角, 同一行中颜色相同的连续像素合并为一条 fill
func PixelArt(img image.Image, opts PixelArtOptions) (*script.Script, error) {
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}
	width, height := fitSize(img, opts.Width, opts.Height)
	pixels := resample(img, width, height)

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.Default(int64(width*height), "📊 处理像素")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# 像素画 %d × %d, 调色板 %d 种方块\n", width, height, palette.Len()))
	if opts.Flat {
		sb.WriteString("# 平铺模式: 图片上边朝北 (~z 递增方向为南)\n")
	} else {
		sb.WriteString("# 竖立模式: 基准点为左下角\n")
	}
	sb.WriteString("# 使用 sunscript batch 在任意位置放置\n")

	commands := 0
	for row := 0; row < height; row++ {
		x := 0
		for x < width {
			block, skip := pixelBlock(pixels, palette, x, row)
			run := 1
			for x+run < width {
				nextBlock, nextSkip := pixelBlock(pixels, palette, x+run, row)
				if nextSkip != skip || nextBlock != block {
					break
				}
				run++
			}
			if !skip {
				sb.WriteString(pixelCommand(x, row, run, height, block, opts.Flat))
				sb.WriteByte('\n')
				commands++
			}
			if bar != nil {
				bar.Add(run)
			}
			x += run
		}
	}
	if commands == 0 {
		return nil, fmt.Errorf("图片全部为透明像素, 没有可生成的方块")
	}
	return script.ParseString(sb.String())
}

// pixelBlock 取一个像素的匹配方块, 透明像素跳过
func pixelBlock(pixels *image.NRGBA, palette *Palette, x, y int) (block string, skip bool) {
	c := pixels.NRGBAAt(x, y)
	if c.A < 128 {
		return "", true
	}
	return palette.Nearest(c), false
}

// pixelCommand 一段同色像素的放置命令。
// 竖立模式下图片顶行对应最高的 y, 平铺模式下顶行对应 z 0
func pixelCommand(x, row, run, height int, block string, flat bool) string {
	var sy, sz int
	if flat {
		sz = row
	} else {
		sy = height - 1 - row
	}
	if run == 1 {
		return fmt.Sprintf("setblock ~%d ~%d ~%d %s", x, sy, sz, block)
	}
	return fmt.Sprintf("fill ~%d ~%d ~%d ~%d ~%d ~%d %s", x, sy, sz, x+run-1, sy, sz, block)
}
