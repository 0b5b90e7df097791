// Package calibration рисует крестики во всех вычисленных точках поверх скриншота,
// чтобы вручную сверить константы сетки с реальным окном игры.
package calibration

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"

	"osbot/internal/helpers"
	"osbot/internal/layout"
)

// Capturer источник скриншота
type Capturer interface {
	Capture() (*image.RGBA, error)
}

// Marker внешний вид крестика
type Marker struct {
	Radius int
	Color  color.RGBA
}

// Points все точки, которые опрашивает бот: процессоры, очередь, память, диск и I/O
func Points(s layout.Screen, numCPUs int) []image.Point {
	var points []image.Point
	points = append(points, s.Points(layout.CPU, numCPUs)...)
	points = append(points, s.Points(layout.Idle, s.Capacity(layout.Idle))...)
	points = append(points, s.Points(layout.RAM, s.Capacity(layout.RAM))...)
	points = append(points, s.Points(layout.Disk, s.Capacity(layout.Disk))...)
	points = append(points, s.Point(layout.IO, 0))
	return points
}

// DrawPlus рисует крестик с центром в p; точки за пределами изображения отбрасываются
func DrawPlus(img draw.Image, p image.Point, m Marker) {
	for i := 0; i < m.Radius; i++ {
		img.Set(p.X+i, p.Y, m.Color)
		img.Set(p.X-i, p.Y, m.Color)
		img.Set(p.X, p.Y+i, m.Color)
		img.Set(p.X, p.Y-i, m.Color)
	}
}

// Annotate рисует крестики во всех точках. Точки заданы относительно левого верхнего угла img.
func Annotate(img draw.Image, points []image.Point, m Marker) {
	origin := img.Bounds().Min
	for _, p := range points {
		DrawPlus(img, p.Add(origin), m)
	}
}

// Verify делает скриншот, размечает его и сохраняет в path
func Verify(c Capturer, table layout.Table, numCPUs, numRamRows int, m Marker, path string) (int, error) {
	if numCPUs < 1 {
		return 0, errors.Errorf("cpu count must be >= 1, got %d", numCPUs)
	}

	img, err := c.Capture()
	if err != nil {
		return 0, err
	}

	bounds := img.Bounds()
	s, err := layout.NewScreen(table, numRamRows, bounds.Dx(), bounds.Dy())
	if err != nil {
		return 0, err
	}

	points := Points(s, numCPUs)
	Annotate(img, points, m)

	if err := helpers.SaveImage(img, path); err != nil {
		return 0, errors.Wrapf(err, "failed to save verification image %s", path)
	}
	return len(points), nil
}
