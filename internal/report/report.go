package report

import (
	"fmt"
	"io"
)

// Section headers and status lines of the console report
const (
	HeaderInventory = "~~~~~~~~ INVENTORY ~~~~~~~~"
	HeaderModifiers = "~~~~~~~~ MODIFIERS ~~~~~~~~"
	StatusApplying  = "Using all modifiers..."
)

// Describer is anything that renders itself as report lines
type Describer interface {
	Describe() []string
}

// Printer writes report sections to an io.Writer.
// The first write error is kept and later writes become no-ops.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Section writes header followed by every line of d
func (p *Printer) Section(header string, d Describer) {
	p.Line(header)
	p.Lines(d)
}

// Lines writes every line of d
func (p *Printer) Lines(d Describer) {
	for _, line := range d.Describe() {
		p.Line(line)
	}
}

// Line writes a single line
func (p *Printer) Line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

// Blank writes an empty line
func (p *Printer) Blank() {
	p.Line("")
}

// Err returns the first write error, if any
func (p *Printer) Err() error {
	return p.err
}
