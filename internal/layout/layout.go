// Package layout переводит логический индекс ячейки игрового поля в пиксельные
// координаты экрана. Каждая область описывается аффинной сеткой в долях
// ширины и высоты экрана.
package layout

import (
	"fmt"
	"image"

	"github.com/pkg/errors"
)

// Kind область игрового поля
type Kind int

const (
	CPU Kind = iota
	Idle
	RAM
	Disk
	IO
)

func (k Kind) String() string {
	switch k {
	case CPU:
		return "cpu"
	case Idle:
		return "idle"
	case RAM:
		return "ram"
	case Disk:
		return "disk"
	case IO:
		return "io"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Region сетка одной области экрана.
// RowWidth == 0 означает одну строку без переноса (ряд процессоров, индикатор I/O).
type Region struct {
	StartX   float64 `mapstructure:"start_x"`
	StartY   float64 `mapstructure:"start_y"`
	IncX     float64 `mapstructure:"inc_x"`
	IncY     float64 `mapstructure:"inc_y"`
	RowWidth int     `mapstructure:"row_width"`
	Rows     int     `mapstructure:"rows"`
}

// Cell раскладывает индекс на столбец и строку
func (r Region) Cell(index int) (col, row int) {
	if r.RowWidth <= 0 {
		return index, 0
	}
	return index % r.RowWidth, index / r.RowWidth
}

// Capacity количество ячеек в сетке
func (r Region) Capacity() int {
	return r.RowWidth * r.Rows
}

func (r Region) point(col, row int, offsetY float64, width, height int) image.Point {
	x := (r.StartX + r.IncX*float64(col)) * float64(width)
	y := (r.StartY + offsetY + r.IncY*float64(row)) * float64(height)
	return image.Pt(int(x), int(y))
}

// Table откалиброванные сетки всех областей
type Table struct {
	CPU  Region `mapstructure:"cpu"`
	Idle Region `mapstructure:"idle"`
	RAM  Region `mapstructure:"ram"`
	Disk Region `mapstructure:"disk"`
	IO   Region `mapstructure:"io"`
}

// DefaultTable константы, снятые с окна игры при калибровке
func DefaultTable() Table {
	return Table{
		CPU: Region{
			StartX: 0.07128906,
			StartY: 0.1267361,
			IncX:   0.05399922,
			Rows:   1,
		},
		Idle: Region{
			StartX:   0.07128906,
			StartY:   0.2734375,
			IncX:     0.05399922,
			IncY:     0.0957861088888889,
			RowWidth: 7,
			Rows:     6,
		},
		RAM: Region{
			StartX:   0.4736328,
			StartY:   0.24131945,
			IncX:     0.0317383,
			IncY:     0.05084721,
			RowWidth: 16,
		},
		Disk: Region{
			StartX:   0.4736328,
			StartY:   0.3567708333333333,
			IncX:     0.0317383,
			IncY:     0.05084721,
			RowWidth: 16,
			Rows:     10,
		},
		IO: Region{
			StartX: 0.0869140625,
			StartY: 0.036458333333333336,
			Rows:   1,
		},
	}
}

// Region возвращает сетку области
func (t Table) Region(k Kind) Region {
	switch k {
	case CPU:
		return t.CPU
	case Idle:
		return t.Idle
	case RAM:
		return t.RAM
	case Disk:
		return t.Disk
	default:
		return t.IO
	}
}

// Position вычисляет координаты ячейки index области k.
// Область диска сдвигается вниз на (numRamRows-1) строк оперативной памяти,
// поэтому numRamRows должен быть не меньше 1.
func (t Table) Position(k Kind, index, numRamRows, width, height int) image.Point {
	r := t.Region(k)
	if k == IO {
		index = 0
	}
	col, row := r.Cell(index)

	offsetY := 0.0
	if k == Disk {
		offsetY = t.RAM.IncY * float64(numRamRows-1)
	}
	return r.point(col, row, offsetY, width, height)
}

// RAMCapacity количество страниц оперативной памяти при заданном числе строк
func (t Table) RAMCapacity(numRamRows int) int {
	return t.RAM.RowWidth * numRamRows
}

// Validate проверяет, что сетки с переносом строк имеют ширину строки
func (t Table) Validate() error {
	for _, k := range []Kind{Idle, RAM, Disk} {
		r := t.Region(k)
		if r.RowWidth < 1 {
			return errors.Errorf("layout %s: row_width must be >= 1, got %d", k, r.RowWidth)
		}
	}
	for _, k := range []Kind{Idle, Disk} {
		if t.Region(k).Rows < 1 {
			return errors.Errorf("layout %s: rows must be >= 1, got %d", k, t.Region(k).Rows)
		}
	}
	return nil
}

// Screen привязывает таблицу к конкретному экрану и числу строк памяти
type Screen struct {
	Table      Table
	NumRamRows int
	Width      int
	Height     int
}

// NewScreen создает Screen, проверяя размеры
func NewScreen(t Table, numRamRows, width, height int) (Screen, error) {
	if numRamRows < 1 {
		return Screen{}, errors.Errorf("ram row count must be >= 1, got %d", numRamRows)
	}
	if width <= 0 || height <= 0 {
		return Screen{}, errors.Errorf("invalid screen size %dx%d", width, height)
	}
	return Screen{Table: t, NumRamRows: numRamRows, Width: width, Height: height}, nil
}

// Point координаты ячейки index области k
func (s Screen) Point(k Kind, index int) image.Point {
	return s.Table.Position(k, index, s.NumRamRows, s.Width, s.Height)
}

// Points координаты первых n ячеек области k
func (s Screen) Points(k Kind, n int) []image.Point {
	points := make([]image.Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, s.Point(k, i))
	}
	return points
}

// Capacity количество ячеек, которые опрашиваются в области k.
// Число слотов процессора задается снаружи, для CPU возвращается 0.
func (s Screen) Capacity(k Kind) int {
	switch k {
	case CPU:
		return 0
	case RAM:
		return s.Table.RAMCapacity(s.NumRamRows)
	case IO:
		return 1
	}
	return s.Table.Region(k).Capacity()
}
