package mips

import (
	"testing"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns the foreground color of a table cell
func cellColor(table *tview.Table, row, column int) tcell.Color {
	fg, _, _ := table.GetCell(row, column).Style.Decompose()
	return fg
}

func TestBuildFieldTable(t *testing.T) {
	table := buildFieldTable(decodeDefault(t, decoder.OutOfRange_Raw))

	require.Equal(t, 7, table.GetRowCount())
	require.Equal(t, len(fieldTableHeaders), table.GetColumnCount())

	assert.Equal(t, "Field", table.GetCell(0, 0).Text)
	assert.Equal(t, "op", table.GetCell(1, 0).Text)
	assert.Equal(t, "001110", table.GetCell(1, 1).Text)
	assert.Equal(t, "26", table.GetCell(1, 2).Text)
	assert.Equal(t, "$t6", table.GetCell(1, 5).Text)
	assert.Equal(t, tcell.ColorGreen, cellColor(table, 1, 5))

	assert.Equal(t, "funct", table.GetCell(6, 0).Text)
	assert.Equal(t, "40", table.GetCell(6, 5).Text)
	assert.Equal(t, tcell.ColorRed, cellColor(table, 6, 5))
}

func TestBuildInspectView(t *testing.T) {
	layout, table, err := buildInspectView(decodeDefault(t, decoder.OutOfRange_Raw))

	require.NoError(t, err)
	assert.NotNil(t, layout)
	assert.Equal(t, 2, layout.GetItemCount())
	assert.Equal(t, table, layout.GetItem(1))
}
