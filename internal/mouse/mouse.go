// Package mouse управляет системным курсором через robotgo.
package mouse

import (
	"image"

	"github.com/go-vgo/robotgo"
)

// Driver двигает курсор и нажимает левую кнопку
type Driver struct{}

// NewDriver создает Driver
func NewDriver() *Driver {
	return &Driver{}
}

// Move переносит курсор в абсолютные координаты
func (d *Driver) Move(p image.Point) error {
	robotgo.Move(p.X, p.Y)
	return nil
}

// Click нажимает левую кнопку в текущей позиции
func (d *Driver) Click() error {
	robotgo.Click("left", false)
	return nil
}

// Close ничего не освобождает, нужен для общего интерфейса драйверов
func (d *Driver) Close() error {
	return nil
}

// Position текущая позиция курсора
func Position() image.Point {
	x, y := robotgo.Location()
	return image.Pt(x, y)
}
