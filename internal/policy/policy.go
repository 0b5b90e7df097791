// Package policy решает, какие ячейки нажать за одну итерацию.
// Решение строится только по снимку и не имеет побочных эффектов.
package policy

import (
	"fmt"

	"osbot/internal/game"
	"osbot/internal/layout"
)

// ActionKind тип действия
type ActionKind int

const (
	ClearIO ActionKind = iota
	StopProcess
	RunProcess
	SwapOut
	SwapIn
)

func (k ActionKind) String() string {
	switch k {
	case ClearIO:
		return "clear_io"
	case StopProcess:
		return "stop_process"
	case RunProcess:
		return "run_process"
	case SwapOut:
		return "swap_out"
	case SwapIn:
		return "swap_in"
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Region область экрана, в которой нажимается действие
func (k ActionKind) Region() layout.Kind {
	switch k {
	case StopProcess:
		return layout.CPU
	case RunProcess:
		return layout.Idle
	case SwapOut:
		return layout.RAM
	case SwapIn:
		return layout.Disk
	}
	return layout.IO
}

// Action одно нажатие: тип и логический индекс ячейки в своей области
type Action struct {
	Kind ActionKind
	Slot int
}

func (a Action) String() string {
	if a.Kind == ClearIO {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s@%d", a.Kind, a.Slot)
}

// ApplyEvictions снимает с процессора процессы, которым он больше не нужен.
// Возвращает новый снимок с освобожденными слотами и список действий остановки.
func ApplyEvictions(state game.GameState) (game.GameState, []Action) {
	next := state.Clone()
	var actions []Action
	for i, p := range next.CPUs {
		if p == nil || p.State.ShouldBeOnCPU() {
			continue
		}
		actions = append(actions, Action{Kind: StopProcess, Slot: p.Pos})
		next.CPUs[i] = nil
	}
	return next, actions
}

// Launches выбирает самые срочные процессы из очереди на свободные слоты
func Launches(state game.GameState) []Action {
	open := state.OpenCPUs()
	idle := append([]game.IdleProcess(nil), state.Idle...)
	game.SortIdle(idle)

	if open > len(idle) {
		open = len(idle)
	}
	actions := make([]Action, 0, open)
	for _, p := range idle[:open] {
		actions = append(actions, Action{Kind: RunProcess, Slot: p.Pos})
	}
	return actions
}

// Paging переносит нужные страницы с диска в память.
// Свободная память поглощает страницу без вытеснения. Иначе курсор по списку
// памяти ищет ненужную страницу; если таких не осталось, подкачка в этой
// итерации прекращается целиком.
func Paging(state game.GameState, ramCapacity int) []Action {
	available := ramCapacity - len(state.RAM)
	if available < 0 {
		available = 0
	}

	var actions []Action
	cursor := 0
	for _, page := range state.Disk {
		if !page.Needed {
			continue
		}

		if available > 0 {
			available--
			actions = append(actions, Action{Kind: SwapIn, Slot: page.Pos})
			continue
		}

		for cursor < len(state.RAM) && state.RAM[cursor].Needed {
			cursor++
		}
		if cursor >= len(state.RAM) {
			break
		}
		actions = append(actions,
			Action{Kind: SwapOut, Slot: state.RAM[cursor].Pos},
			Action{Kind: SwapIn, Slot: page.Pos},
		)
		cursor++
	}
	return actions
}

// Plan полный упорядоченный список действий одной итерации
func Plan(state game.GameState, ramCapacity int) []Action {
	actions := []Action{{Kind: ClearIO}}

	next, stops := ApplyEvictions(state)
	actions = append(actions, stops...)
	actions = append(actions, Launches(next)...)
	actions = append(actions, Paging(next, ramCapacity)...)
	return actions
}
