package mips

import (
	"fmt"

	"github.com/Manu343726/mipsdecode/pkg/hw/mips/decoder"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [number]",
	Short: "Browse the fields of a MIPS instruction word interactively",
	Long: `Decodes an instruction word like the decode command does and shows the result
in an interactive terminal view: the instruction frame on top and a table with
every field below. Press q or Esc to quit.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd)
	},
	RunE: runInspect,
}

func init() {
	addInstructionFlags(InspectCmd.Flags())
}

var fieldTableHeaders = []string{"Field", "Bits", "Offset", "Width", "Raw", "Value"}

// Builds the table listing the decoded fields, one row per field after the header row
func buildFieldTable(result *decodeResult) *tview.Table {
	table := tview.NewTable().
		SetBorders(true).
		SetFixed(1, 0).
		SetSelectable(true, false)

	for column, header := range fieldTableHeaders {
		table.SetCell(0, column, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, field := range result.Fields {
		row := i + 1
		valueColor := tcell.ColorGreen
		if !field.Resolved {
			valueColor = tcell.ColorRed
		}

		table.SetCell(row, 0, tview.NewTableCell(field.Name).SetTextColor(tcell.ColorAqua))
		table.SetCell(row, 1, tview.NewTableCell(field.Binary()))
		table.SetCell(row, 2, tview.NewTableCell(fmt.Sprint(field.Offset)).SetAlign(tview.AlignRight))
		table.SetCell(row, 3, tview.NewTableCell(fmt.Sprint(field.Width)).SetAlign(tview.AlignRight))
		table.SetCell(row, 4, tview.NewTableCell(fmt.Sprint(field.Raw)).SetAlign(tview.AlignRight))
		table.SetCell(row, 5, tview.NewTableCell(field.Value).SetTextColor(valueColor))
	}

	return table
}

// Builds the inspect view layout
func buildInspectView(result *decodeResult) (*tview.Flex, *tview.Table, error) {
	frame, err := decoder.PrettyPrint(result.Fields, 1)
	if err != nil {
		return nil, nil, err
	}

	header := tview.NewTextView().
		SetText(fmt.Sprintf(" %v (%v) %v\n\n%v", result.Format, result.Format.Description(), result.Word, frame))
	header.SetBorder(true).SetTitle(" instruction ")

	table := buildFieldTable(result)
	table.SetBorder(true).SetTitle(" fields (q to quit) ")

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 10, 0, false).
		AddItem(table, 0, 1, true)

	return layout, table, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(args)
	if err != nil {
		return err
	}

	result, err := decode(s)
	if err != nil {
		return err
	}

	layout, table, err := buildInspectView(result)
	if err != nil {
		return err
	}

	app := tview.NewApplication()
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}

		return event
	})

	return app.SetRoot(layout, true).SetFocus(table).Run()
}
