// Package palette распознает состояние ячейки по точному цвету пикселя.
package palette

import (
	"image/color"

	"osbot/internal/game"
)

// Цвета процессов
var (
	WaitingColor   = color.RGBA{R: 155, G: 155, B: 154, A: 255}
	NeedRamColor   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	FinishedColor  = color.RGBA{R: 176, G: 216, B: 230, A: 255}
	HappyColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	SatisfiedColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	AnnoyedColor   = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	AngryColor     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	CryingColor    = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	DyingColor     = color.RGBA{R: 80, G: 0, B: 0, A: 255}
)

// Цвета страниц памяти. Игра рисует нужную страницу одним из двух цветов.
var (
	PageUnusedColor  = color.RGBA{R: 99, G: 102, B: 106, A: 255}
	PageNeeded1Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	PageNeeded2Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

var processColors = map[color.RGBA]game.ProcessState{
	WaitingColor:   game.Waiting,
	NeedRamColor:   game.NeedRam,
	FinishedColor:  game.Finished,
	HappyColor:     game.Happy,
	SatisfiedColor: game.Satisfied,
	AnnoyedColor:   game.Annoyed,
	AngryColor:     game.Angry,
	CryingColor:    game.Crying,
	DyingColor:     game.Dying,
}

var pageColors = map[color.RGBA]bool{
	PageUnusedColor:  false,
	PageNeeded1Color: true,
	PageNeeded2Color: true,
}

// ClassifyProcess возвращает состояние процесса; ok == false, если цвет не из палитры
func ClassifyProcess(c color.RGBA) (state game.ProcessState, ok bool) {
	state, ok = processColors[c]
	return state, ok
}

// ClassifyPage возвращает признак "страница нужна"; ok == false, если ячейка пуста
func ClassifyPage(c color.RGBA) (needed bool, ok bool) {
	needed, ok = pageColors[c]
	return needed, ok
}

// ProcessColor цвет, которым игра рисует процесс в состоянии s
func ProcessColor(s game.ProcessState) (color.RGBA, bool) {
	for c, state := range processColors {
		if state == s {
			return c, true
		}
	}
	return color.RGBA{}, false
}
