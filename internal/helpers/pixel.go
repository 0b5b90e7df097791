package helpers

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// PixelAt получает цвет пикселя по координатам.
// За пределами изображения возвращается прозрачный черный, который не входит ни в одну палитру.
func PixelAt(img image.Image, p image.Point) color.RGBA {
	if !p.In(img.Bounds()) {
		return color.RGBA{}
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba.RGBAAt(p.X, p.Y)
	}
	return color.RGBAModel.Convert(img.At(p.X, p.Y)).(color.RGBA)
}

// SaveImage сохраняет изображение в PNG файл
func SaveImage(img image.Image, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return errors.Wrap(err, "failed to encode image")
	}
	return file.Close()
}
