package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() Table {
	grid := Region{StartX: 0.25, StartY: 0.5, IncX: 0.125, IncY: 0.0625, RowWidth: 4, Rows: 2}
	return Table{
		CPU:  Region{StartX: 0.125, StartY: 0.25, IncX: 0.0625, Rows: 1},
		Idle: grid,
		RAM:  Region{StartX: 0.5, StartY: 0.125, IncX: 0.03125, IncY: 0.0625, RowWidth: 8},
		Disk: Region{StartX: 0.5, StartY: 0.25, IncX: 0.03125, IncY: 0.0625, RowWidth: 8, Rows: 3},
		IO:   Region{StartX: 0.0625, StartY: 0.03125, Rows: 1},
	}
}

func TestPosition(t *testing.T) {
	table := testTable()

	tests := []struct {
		name       string
		kind       Kind
		index      int
		numRamRows int
		want       image.Point
	}{
		{"cpu first", CPU, 0, 1, image.Pt(128, 128)},
		{"cpu row never wraps", CPU, 3, 1, image.Pt(320, 128)},
		{"idle origin", Idle, 0, 1, image.Pt(256, 256)},
		{"idle second row", Idle, 5, 1, image.Pt(384, 288)},
		{"ram wraps after row width", RAM, 9, 1, image.Pt(544, 96)},
		{"disk single ram row", Disk, 0, 1, image.Pt(512, 128)},
		{"disk shifted by ram rows", Disk, 0, 3, image.Pt(512, 192)},
		{"disk shifted and wrapped", Disk, 10, 3, image.Pt(576, 224)},
		{"io ignores index", IO, 7, 1, image.Pt(64, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Position(tt.kind, tt.index, tt.numRamRows, 1024, 512)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPositionIsDeterministic(t *testing.T) {
	table := DefaultTable()
	for _, k := range []Kind{CPU, Idle, RAM, Disk, IO} {
		for i := 0; i < 40; i++ {
			first := table.Position(k, i, 2, 1920, 1080)
			second := table.Position(k, i, 2, 1920, 1080)
			assert.Equal(t, first, second, "%s[%d]", k, i)
		}
	}
}

func TestCellDecomposition(t *testing.T) {
	for _, width := range []int{1, 7, 16} {
		r := Region{RowWidth: width}
		for i := 0; i < 200; i++ {
			col, row := r.Cell(i)
			assert.Equal(t, i%width, col)
			assert.Equal(t, i/width, row)
			assert.Equal(t, i, row*width+col)
		}
	}

	col, row := Region{}.Cell(12)
	assert.Equal(t, 12, col)
	assert.Equal(t, 0, row)
}

func TestDefaultTableFitsScreen(t *testing.T) {
	table := DefaultTable()
	require.NoError(t, table.Validate())

	bounds := image.Rect(0, 0, 1920, 1080)
	for numRamRows := 1; numRamRows <= 4; numRamRows++ {
		s, err := NewScreen(table, numRamRows, 1920, 1080)
		require.NoError(t, err)

		for _, k := range []Kind{Idle, RAM, Disk, IO} {
			for _, p := range s.Points(k, s.Capacity(k)) {
				assert.True(t, p.In(bounds), "%s point %v outside screen with %d ram rows", k, p, numRamRows)
			}
		}
		for _, p := range s.Points(CPU, 8) {
			assert.True(t, p.In(bounds), "cpu point %v outside screen", p)
		}
	}
}

func TestDiskMovesDownWithRamRows(t *testing.T) {
	table := DefaultTable()
	prev := table.Position(Disk, 0, 1, 1920, 1080)
	for rows := 2; rows <= 4; rows++ {
		p := table.Position(Disk, 0, rows, 1920, 1080)
		assert.Equal(t, prev.X, p.X)
		assert.Greater(t, p.Y, prev.Y)
		prev = p
	}
}

func TestCapacity(t *testing.T) {
	s, err := NewScreen(DefaultTable(), 3, 1920, 1080)
	require.NoError(t, err)

	assert.Equal(t, 42, s.Capacity(Idle))
	assert.Equal(t, 48, s.Capacity(RAM))
	assert.Equal(t, 160, s.Capacity(Disk))
	assert.Equal(t, 1, s.Capacity(IO))
	assert.Equal(t, 64, DefaultTable().RAMCapacity(4))
}

func TestNewScreenRejectsBadInput(t *testing.T) {
	_, err := NewScreen(DefaultTable(), 0, 1920, 1080)
	assert.Error(t, err)

	_, err = NewScreen(DefaultTable(), 1, 0, 1080)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	table := DefaultTable()
	table.RAM.RowWidth = 0
	assert.Error(t, table.Validate())

	table = DefaultTable()
	table.Disk.Rows = 0
	assert.Error(t, table.Validate())
}
