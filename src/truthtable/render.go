package truthtable

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/hkarlsen/truthtab/src/environment"
)

var (
	trueCell  = color.New(color.FgGreen)
	falseCell = color.New(color.FgRed)
)

// A Renderer writes tables as text: a header naming each variable with
// the formula as the last column, a rule of '=' the same width, then
// one T/F line per row.
type Renderer struct {
	output   io.Writer
	colorize bool
}

// NewRenderer writes to stdout and colorizes the truth values when
// stdout is an interactive terminal.
func NewRenderer() *Renderer {
	return &Renderer{
		output:   os.Stdout,
		colorize: environment.IsInteractive(),
	}
}

func (r *Renderer) SetOutput(output io.Writer) {
	r.output = output
}

func (r *Renderer) DisableColor() {
	r.colorize = false
}

// Render writes the table. Column separators follow the formula text,
// so a variable-free formula still gets its leading " | ".
func (r *Renderer) Render(table *Table) error {
	header := joinColumns(table.Variables, table.Formula)
	if _, err := fmt.Fprintln(r.output, header); err != nil {
		return fmt.Errorf("failed to write table header: %w", err)
	}
	if _, err := fmt.Fprintln(r.output, strings.Repeat("=", len(header))); err != nil {
		return fmt.Errorf("failed to write table rule: %w", err)
	}

	for _, row := range table.Rows {
		cells := make([]string, len(row.Values))
		for i, value := range row.Values {
			cells[i] = r.cell(value)
		}
		if _, err := fmt.Fprintln(r.output, joinColumns(cells, r.cell(row.Result))); err != nil {
			return fmt.Errorf("failed to write table row: %w", err)
		}
	}

	return nil
}

func (r *Renderer) cell(value bool) string {
	text := "F"
	if value {
		text = "T"
	}
	if !r.colorize {
		return text
	}
	if value {
		return trueCell.Sprint(text)
	}
	return falseCell.Sprint(text)
}

func joinColumns(columns []string, last string) string {
	return strings.Join(columns, " | ") + " | " + last
}
