// Package reader собирает снимок игрового поля из одного скриншота.
package reader

import (
	"image"

	"osbot/internal/game"
	"osbot/internal/helpers"
	"osbot/internal/layout"
	"osbot/internal/palette"
)

// ReadState опрашивает все ячейки поля.
// Слоты процессора сохраняют выравнивание по индексу (nil для пустого слота),
// в очереди, памяти и на диске пропускаются нераспознанные ячейки.
func ReadState(img image.Image, table layout.Table, numCPUs, numRamRows int) game.GameState {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pos := func(k layout.Kind, i int) image.Point {
		return table.Position(k, i, numRamRows, width, height).Add(bounds.Min)
	}

	state := game.GameState{
		CPUs: make([]*game.CpuProcess, numCPUs),
	}

	for i := 0; i < numCPUs; i++ {
		if s, ok := palette.ClassifyProcess(helpers.PixelAt(img, pos(layout.CPU, i))); ok {
			state.CPUs[i] = &game.CpuProcess{State: s, Pos: i}
		}
	}

	for i := 0; i < table.Idle.Capacity(); i++ {
		if s, ok := palette.ClassifyProcess(helpers.PixelAt(img, pos(layout.Idle, i))); ok {
			state.Idle = append(state.Idle, game.IdleProcess{State: s, Pos: i})
		}
	}

	for i := 0; i < table.RAMCapacity(numRamRows); i++ {
		if needed, ok := palette.ClassifyPage(helpers.PixelAt(img, pos(layout.RAM, i))); ok {
			state.RAM = append(state.RAM, game.RamPage{Needed: needed, Pos: i})
		}
	}

	for i := 0; i < table.Disk.Capacity(); i++ {
		if needed, ok := palette.ClassifyPage(helpers.PixelAt(img, pos(layout.Disk, i))); ok {
			state.Disk = append(state.Disk, game.DiskPage{Needed: needed, Pos: i})
		}
	}

	return state
}
