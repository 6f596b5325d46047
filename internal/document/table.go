package document

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// TableSet carries the header and rows of a Markdown table. Every row must
// have exactly as many cells as the header.
type TableSet struct {
	Header []string
	Rows   [][]string
}

// TableOptions tunes how table cells are laid out.
type TableOptions struct {
	// AutoWrap wraps long cell content instead of widening the column.
	AutoWrap bool
	// AutoFormatHeaders title-cases header cells.
	AutoFormatHeaders bool
}

func (t TableSet) validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrColumnMismatch, i, len(row), len(t.Header))
		}
	}
	return nil
}

// Table appends a pipe table with default layout options.
func (b *Builder) Table(t TableSet) *Builder {
	return b.TableWithOptions(t, TableOptions{})
}

// TableWithOptions appends a pipe table rendered through tablewriter's
// Blueprint renderer so the columns come out width-aligned. A column count
// mismatch records a sticky builder error and appends nothing.
func (b *Builder) TableWithOptions(t TableSet, options TableOptions) *Builder {
	if err := t.validate(); err != nil {
		b.recordErr(err)
		return b
	}
	if len(t.Header) == 0 {
		return b
	}

	buf := &strings.Builder{}
	table := tablewriter.NewTable(
		buf,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(
				tw.Rendition{
					Symbols: tw.NewSymbolCustom("Markdown").
						WithHeaderLeft("|").
						WithHeaderRight("|").
						WithColumn("|").
						WithMidLeft("|").
						WithMidRight("|").
						WithCenter("|"),
					Borders: tw.Border{
						Left:   tw.On,
						Top:    tw.Off,
						Right:  tw.On,
						Bottom: tw.Off,
					},
				},
			),
		),
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: autoFormatState(options.AutoFormatHeaders),
				},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap:   autoWrapMode(options.AutoWrap),
					AutoFormat: tw.Fail,
				},
				Alignment: tw.CellAlignment{Global: tw.AlignNone},
			},
		}),
	)

	table.Header(t.Header)
	if err := table.Bulk(t.Rows); err != nil {
		b.recordErr(fmt.Errorf("document: add table rows: %w", err))
		return b
	}
	if err := table.Render(); err != nil {
		b.recordErr(fmt.Errorf("document: render table: %w", err))
		return b
	}

	b.blocks = append(b.blocks, strings.TrimRight(buf.String(), "\n"))
	return b
}

func autoFormatState(enabled bool) tw.State {
	if enabled {
		return tw.Success
	}
	return tw.Fail
}

func autoWrapMode(enabled bool) int {
	if enabled {
		return tw.WrapNormal
	}
	return tw.WrapNone
}
