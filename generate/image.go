package generate

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// LoadImage 加载一张图片。
// 按文件头嗅探实际格式解码, 扩展名与内容不符的图片也能正确打开
func LoadImage(imagePath string) (image.Image, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return nil, fmt.Errorf("读取文件头部失败: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("重置文件指针失败: %w", err)
	}

	actualFormat := http.DetectContentType(buffer)

	var img image.Image
	switch actualFormat {
	case "image/png":
		img, err = png.Decode(file)
	case "image/jpeg":
		img, err = jpeg.Decode(file)
	case "image/webp":
		img, err = webp.Decode(file)
	default:
		// 嗅探不出格式时交给 imaging 尝试
		if _, err := file.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("重置文件指针失败: %w", err)
		}
		img, err = imaging.Decode(file)
	}
	if err != nil {
		return nil, fmt.Errorf("解码图片失败: %v (文件路径: %s, 检测格式: %s)", err, imagePath, actualFormat)
	}
	return img, nil
}

// fitSize 计算目标尺寸, 宽高任一为 0 时取原图对应尺寸
func fitSize(img image.Image, width, height int) (int, int) {
	bounds := img.Bounds()
	if width <= 0 {
		width = bounds.Dx()
	}
	if height <= 0 {
		height = bounds.Dy()
	}
	return width, height
}

// resample 缩放到目标尺寸并转为 NRGBA 像素网格
func resample(img image.Image, width, height int) *image.NRGBA {
	bounds := img.Bounds()
	if width == bounds.Dx() && height == bounds.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
