package display

import (
	"fmt"
	"io"
)

// Printer writes lesson output to w.
//
// The first failed write is kept and every later call becomes a no-op, so a lesson can
// print straight-line and check Err once at the end.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Printf formats like fmt.Printf.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, format, args...)
	p.err = ioErr("printf", err)
}

// Println formats like fmt.Println.
func (p *Printer) Println(args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprintln(p.w, args...)
	p.err = ioErr("println", err)
}

// Print formats like fmt.Print.
func (p *Printer) Print(args ...any) {
	if p.err != nil {
		return
	}
	_, err := fmt.Fprint(p.w, args...)
	p.err = ioErr("print", err)
}

// WriteList writes l followed by a newline.
func (p *Printer) WriteList(l List) {
	if p.err != nil {
		return
	}
	if _, err := l.WriteTo(p.w); err != nil {
		p.err = err
		return
	}
	_, err := io.WriteString(p.w, "\n")
	p.err = ioErr("list", err)
}

// Err returns the first write failure as *IoError, or nil.
func (p *Printer) Err() error { return p.err }
