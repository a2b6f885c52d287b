// Copyright Vesnica
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.
package trace

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/Vesnica/STARK-HE/pkg/util/field"
	"golang.org/x/term"
)

// Printer encapsulates various configuration options useful for printing
// out traces in human-readable form.  One column is printed per line, with
// the row window laid out left to right and clipped to the line width.
type Printer[F field.Element[F]] struct {
	// First row to print
	startRow uint
	// Last row to print (exclusive)
	endRow uint
	// Maximum line width to print
	maxWidth uint
}

// NewPrinter constructs a default printer whose line width matches the
// enclosing terminal (falling back to 80 columns otherwise).
func NewPrinter[F field.Element[F]]() *Printer[F] {
	width := uint(80)
	//
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = uint(w)
		}
	}
	//
	return &Printer[F]{0, math.MaxUint, width}
}

// Window restricts the range of rows to print.
func (p *Printer[F]) Window(start uint, end uint) *Printer[F] {
	p.startRow = start
	p.endRow = end
	//
	return p
}

// MaxWidth overrides the maximum line width.
func (p *Printer[F]) MaxWidth(width uint) *Printer[F] {
	p.maxWidth = width
	//
	return p
}

// Print a given trace to stdout.
func (p *Printer[F]) Print(tr Trace[F]) {
	p.Fprint(os.Stdout, tr)
}

// Fprint prints a given trace to a given writer.
func (p *Printer[F]) Fprint(w io.Writer, tr Trace[F]) {
	var (
		start = p.startRow
		end   = min(p.endRow, tr.Height())
		// Width of the widest column name
		nameWidth = 0
	)
	//
	for i := uint(0); i < tr.Width(); i++ {
		nameWidth = max(nameWidth, len(tr.ColumnName(i)))
	}
	//
	for i := uint(0); i < tr.Width(); i++ {
		var line strings.Builder
		//
		line.WriteString(fmt.Sprintf("%*s |", nameWidth, tr.ColumnName(i)))
		//
		for row := start; row < end; row++ {
			val, err := tr.Get(i, row)
			// Unreachable for in-range rows.
			if err != nil {
				panic(err)
			}
			//
			line.WriteString(" ")
			line.WriteString(val.String())
			// Clip to available width
			if uint(line.Len()) > p.maxWidth {
				break
			}
		}
		//
		fmt.Fprintln(w, clip(line.String(), p.maxWidth))
	}
}

// clip a line to at most n characters, marking the cut with an ellipsis.
func clip(line string, n uint) string {
	if uint(len(line)) <= n {
		return line
	}
	//
	return line[:n-2] + ".."
}
