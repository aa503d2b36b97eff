package cdefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const (
	// HeaderName is the file the generated text is meant to be saved as.
	HeaderName = "c_defs.llh"

	includeGuard = "C_DEFS_LLH"
	rule         = ";**********************************************************************"
)

// lineWriter buffers output and keeps the first write error.
type lineWriter struct {
	w   *bufio.Writer
	err error
}

func (lw *lineWriter) writeLine(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format+"\n", args...)
}

func (lw *lineWriter) flush() error {
	if lw.err != nil {
		return lw.err
	}
	return lw.w.Flush()
}

// Validate reports whether p can be rendered.
func (p *Platform) Validate() error {
	if p == nil {
		return errors.New("nil platform")
	}
	if p.CharBit <= 0 {
		return fmt.Errorf("invalid CHAR_BIT %d", p.CharBit)
	}
	for i, t := range p.Types {
		if t.Name == "" {
			return fmt.Errorf("type %d has no name", i)
		}
		if t.Size <= 0 {
			return fmt.Errorf("type %s has invalid size %d", t.Name, t.Size)
		}
	}
	for i, c := range p.Constants {
		if c.Name == "" {
			return fmt.Errorf("constant %d has no name", i)
		}
	}
	return nil
}

func genBanner(lw *lineWriter) {
	lw.writeLine(rule)
	lw.writeLine("; THIS FILE IS AUTOMATICALLY GENERATED BY c_defs.  DO NOT EDIT; CHANGE")
	lw.writeLine("; THE SOURCE CODE IN cmd/c_defs.")
	lw.writeLine(rule)
	lw.writeLine("")
	lw.writeLine(rule)
	lw.writeLine("; %s", HeaderName)
	lw.writeLine("")
	lw.writeLine("; Make C language quantities visible in LLVM code.")
	lw.writeLine("")
	lw.writeLine(rule)
	lw.writeLine("")
}

// genType writes the LLVM alias and the size macros of one C type.
// LLVM measures in bits, C in bytes.
func genType(lw *lineWriter, t TypeFact, charBit int) {
	upper := UpperIdent(t.Name)
	lw.writeLine("%%c_%s = type i%d", t.Name, t.Bits(charBit))
	lw.writeLine("#define C_%s_SIZEOF %d", upper, t.Size)
	lw.writeLine("#define C_%s_BITSOF %d", upper, t.Bits(charBit))
	lw.writeLine("")
}

func genConstant(lw *lineWriter, c Constant) {
	lw.writeLine("#define C_%s %d", UpperIdent(c.Name), c.Value)
}

// Generate writes the c_defs.llh header for p to w.
func Generate(w io.Writer, p *Platform) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("cannot generate %s: %w", HeaderName, err)
	}

	lw := &lineWriter{w: bufio.NewWriter(w)}
	lw.writeLine("#ifndef %s", includeGuard)
	lw.writeLine("#define %s", includeGuard)
	lw.writeLine("")
	genBanner(lw)

	lw.writeLine("; C and unix types")
	for _, t := range p.Types {
		genType(lw, t, p.CharBit)
	}

	lw.writeLine("; C stdio constants")
	for _, c := range p.Constants {
		genConstant(lw, c)
	}
	lw.writeLine("")

	lw.writeLine("#endif")

	if err := lw.flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", HeaderName, err)
	}
	return nil
}
