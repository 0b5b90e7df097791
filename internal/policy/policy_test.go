package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osbot/internal/game"
	"osbot/internal/layout"
)

func cpu(s game.ProcessState, pos int) *game.CpuProcess {
	return &game.CpuProcess{State: s, Pos: pos}
}

func ramPages(needed ...bool) []game.RamPage {
	pages := make([]game.RamPage, 0, len(needed))
	for i, n := range needed {
		pages = append(pages, game.RamPage{Needed: n, Pos: i})
	}
	return pages
}

func TestApplyEvictions(t *testing.T) {
	state := game.GameState{
		CPUs: []*game.CpuProcess{cpu(game.Finished, 0), cpu(game.Angry, 1), cpu(game.Waiting, 2)},
		Idle: []game.IdleProcess{{State: game.NeedRam, Pos: 4}},
	}

	next, stops := ApplyEvictions(state)

	assert.Equal(t, []Action{
		{Kind: StopProcess, Slot: 0},
		{Kind: StopProcess, Slot: 2},
	}, stops)
	assert.Equal(t, 2, next.OpenCPUs())
	assert.Equal(t, cpu(game.Angry, 1), next.CPUs[1])

	// исходный снимок не меняется
	assert.Equal(t, 0, state.OpenCPUs())

	launches := Launches(next)
	assert.Equal(t, []Action{{Kind: RunProcess, Slot: 4}}, launches)
}

func TestApplyEvictionsKeepsBusyProcesses(t *testing.T) {
	busy := []game.ProcessState{game.NeedRam, game.Dying, game.Crying, game.Angry, game.Annoyed, game.Satisfied}
	state := game.GameState{}
	for i, s := range busy {
		state.CPUs = append(state.CPUs, cpu(s, i))
	}

	next, stops := ApplyEvictions(state)
	assert.Empty(t, stops)
	assert.Equal(t, 0, next.OpenCPUs())
}

func TestLaunchesPicksMostUrgentFirst(t *testing.T) {
	state := game.GameState{
		CPUs: []*game.CpuProcess{nil, cpu(game.Angry, 1), nil},
		Idle: []game.IdleProcess{
			{State: game.Happy, Pos: 2},
			{State: game.NeedRam, Pos: 7},
			{State: game.Angry, Pos: 1},
			{State: game.NeedRam, Pos: 0},
		},
	}

	assert.Equal(t, []Action{
		{Kind: RunProcess, Slot: 0},
		{Kind: RunProcess, Slot: 7},
	}, Launches(state))

	// очередь в снимке не пересортирована
	assert.Equal(t, game.Happy, state.Idle[0].State)
}

func TestLaunchesWithEmptyQueue(t *testing.T) {
	state := game.GameState{CPUs: []*game.CpuProcess{nil, nil}}
	assert.Empty(t, Launches(state))
}

func TestPagingEvictsFirstUnneededPage(t *testing.T) {
	state := game.GameState{
		RAM:  ramPages(true, false, true, false),
		Disk: []game.DiskPage{{Needed: true, Pos: 3}},
	}

	assert.Equal(t, []Action{
		{Kind: SwapOut, Slot: 1},
		{Kind: SwapIn, Slot: 3},
	}, Paging(state, 4))
}

func TestPagingCursorPersistsAcrossDiskPages(t *testing.T) {
	state := game.GameState{
		RAM: ramPages(true, false, true, false),
		Disk: []game.DiskPage{
			{Needed: true, Pos: 0},
			{Needed: false, Pos: 1},
			{Needed: true, Pos: 2},
			{Needed: true, Pos: 5},
		},
	}

	assert.Equal(t, []Action{
		{Kind: SwapOut, Slot: 1},
		{Kind: SwapIn, Slot: 0},
		{Kind: SwapOut, Slot: 3},
		{Kind: SwapIn, Slot: 2},
	}, Paging(state, 4))
}

func TestPagingUsesFreeRAMWithoutEviction(t *testing.T) {
	state := game.GameState{
		RAM:  ramPages(true, false),
		Disk: []game.DiskPage{{Needed: true, Pos: 9}},
	}

	assert.Equal(t, []Action{{Kind: SwapIn, Slot: 9}}, Paging(state, 4))
}

func TestPagingExhaustsFreeRAMThenEvicts(t *testing.T) {
	state := game.GameState{
		RAM: ramPages(false, true, true),
		Disk: []game.DiskPage{
			{Needed: true, Pos: 0},
			{Needed: true, Pos: 1},
			{Needed: true, Pos: 2},
		},
	}

	assert.Equal(t, []Action{
		{Kind: SwapIn, Slot: 0},
		{Kind: SwapOut, Slot: 0},
		{Kind: SwapIn, Slot: 1},
	}, Paging(state, 4))
}

func TestPagingAbortsWhenNothingEvictable(t *testing.T) {
	state := game.GameState{
		RAM: ramPages(true, true),
		Disk: []game.DiskPage{
			{Needed: true, Pos: 0},
			{Needed: true, Pos: 1},
		},
	}

	assert.Empty(t, Paging(state, 2))
}

func TestPagingIgnoresUnneededDiskPages(t *testing.T) {
	state := game.GameState{
		RAM:  ramPages(false),
		Disk: []game.DiskPage{{Needed: false, Pos: 0}},
	}
	assert.Empty(t, Paging(state, 1))
}

func TestPagingNeverUnderflowsCapacity(t *testing.T) {
	state := game.GameState{
		RAM:  ramPages(true, true, false),
		Disk: []game.DiskPage{{Needed: true, Pos: 4}},
	}

	assert.Equal(t, []Action{
		{Kind: SwapOut, Slot: 2},
		{Kind: SwapIn, Slot: 4},
	}, Paging(state, 2))
}

func TestPlan(t *testing.T) {
	state := game.GameState{
		CPUs: []*game.CpuProcess{cpu(game.Finished, 0), cpu(game.Angry, 1), cpu(game.Waiting, 2)},
		Idle: []game.IdleProcess{{State: game.NeedRam, Pos: 6}},
		RAM:  ramPages(true, true),
		Disk: []game.DiskPage{{Needed: true, Pos: 0}},
	}

	actions := Plan(state, 4)

	assert.Equal(t, []Action{
		{Kind: ClearIO},
		{Kind: StopProcess, Slot: 0},
		{Kind: StopProcess, Slot: 2},
		{Kind: RunProcess, Slot: 6},
		{Kind: SwapIn, Slot: 0},
	}, actions)
}

func TestPlanAlwaysClearsIOOnce(t *testing.T) {
	states := []game.GameState{
		{},
		{CPUs: []*game.CpuProcess{nil, nil}},
		{CPUs: []*game.CpuProcess{cpu(game.Happy, 0)}, Idle: []game.IdleProcess{{State: game.Dying, Pos: 1}}},
	}

	for _, s := range states {
		actions := Plan(s, 16)
		require.NotEmpty(t, actions)
		assert.Equal(t, ClearIO, actions[0].Kind)

		count := 0
		for _, a := range actions {
			if a.Kind == ClearIO {
				count++
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestActionRegion(t *testing.T) {
	assert.Equal(t, layout.IO, ClearIO.Region())
	assert.Equal(t, layout.CPU, StopProcess.Region())
	assert.Equal(t, layout.Idle, RunProcess.Region())
	assert.Equal(t, layout.RAM, SwapOut.Region())
	assert.Equal(t, layout.Disk, SwapIn.Region())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "clear_io", Action{Kind: ClearIO}.String())
	assert.Equal(t, "swap_in@12", Action{Kind: SwapIn, Slot: 12}.String())
}
