package game

import (
	"cmp"
	"fmt"
	"slices"
)

// ProcessState состояние процесса на экране игры.
// Порядок объявления задает приоритет: чем меньше значение, тем срочнее процесс.
type ProcessState int

const (
	NeedRam ProcessState = iota
	Dying
	Crying
	Angry
	Annoyed
	Satisfied
	Happy
	Finished
	Waiting
)

var processStateNames = [...]string{
	NeedRam:   "NeedRam",
	Dying:     "Dying",
	Crying:    "Crying",
	Angry:     "Angry",
	Annoyed:   "Annoyed",
	Satisfied: "Satisfied",
	Happy:     "Happy",
	Finished:  "Finished",
	Waiting:   "Waiting",
}

// AllProcessStates возвращает все состояния в порядке приоритета
func AllProcessStates() []ProcessState {
	return []ProcessState{NeedRam, Dying, Crying, Angry, Annoyed, Satisfied, Happy, Finished, Waiting}
}

func (s ProcessState) String() string {
	if s < 0 || int(s) >= len(processStateNames) {
		return fmt.Sprintf("ProcessState(%d)", int(s))
	}
	return processStateNames[s]
}

// ShouldBeOnCPU возвращает false для процессов, которым процессор больше не нужен
func (s ProcessState) ShouldBeOnCPU() bool {
	switch s {
	case Finished, Happy, Waiting:
		return false
	}
	return true
}

// CpuProcess процесс, занимающий слот процессора
type CpuProcess struct {
	State ProcessState
	Pos   int
}

// IdleProcess процесс в очереди ожидания
type IdleProcess struct {
	State ProcessState
	Pos   int
}

// Compare упорядочивает процессы по паре (состояние, позиция)
func (p IdleProcess) Compare(o IdleProcess) int {
	if c := cmp.Compare(p.State, o.State); c != 0 {
		return c
	}
	return cmp.Compare(p.Pos, o.Pos)
}

// SortIdle сортирует очередь по срочности, при равенстве по позиции
func SortIdle(idle []IdleProcess) {
	slices.SortStableFunc(idle, IdleProcess.Compare)
}

// RamPage страница в оперативной памяти
type RamPage struct {
	Needed bool
	Pos    int
}

// DiskPage страница в области подкачки
type DiskPage struct {
	Needed bool
	Pos    int
}

// GameState снимок всего игрового поля.
// CPUs выровнен по индексу слота (nil означает пустой слот),
// остальные списки содержат только распознанные ячейки.
type GameState struct {
	CPUs []*CpuProcess
	Idle []IdleProcess
	RAM  []RamPage
	Disk []DiskPage
}

// Clone возвращает копию снимка, не разделяющую срезы с исходным
func (s GameState) Clone() GameState {
	return GameState{
		CPUs: slices.Clone(s.CPUs),
		Idle: slices.Clone(s.Idle),
		RAM:  slices.Clone(s.RAM),
		Disk: slices.Clone(s.Disk),
	}
}

// OpenCPUs считает пустые слоты процессора
func (s GameState) OpenCPUs() int {
	n := 0
	for _, p := range s.CPUs {
		if p == nil {
			n++
		}
	}
	return n
}
