// Package cdefs describes the C platform facts exported to LLVM code and
// renders them as the c_defs.llh header.
package cdefs

// TypeFact is a C type and its size in bytes.
type TypeFact struct {
	Name string
	Size int
}

// Bits returns the width of the type for a platform with charBit bits per byte.
func (t TypeFact) Bits(charBit int) int {
	return t.Size * charBit
}

// Constant is a named integer exported verbatim.
type Constant struct {
	Name  string
	Value int
}

// Platform holds everything written to the header, in output order.
type Platform struct {
	CharBit   int
	Types     []TypeFact
	Constants []Constant
}

// Type returns the fact for the named C type.
func (p *Platform) Type(name string) (TypeFact, bool) {
	for _, t := range p.Types {
		if t.Name == name {
			return t, true
		}
	}
	return TypeFact{}, false
}

// Constant returns the value of the named constant.
func (p *Platform) Constant(name string) (int, bool) {
	for _, c := range p.Constants {
		if c.Name == name {
			return c.Value, true
		}
	}
	return 0, false
}

// Native returns the platform the generator was built for.
func Native() *Platform {
	f := probe()
	return &Platform{
		CharBit: f.charBit,
		Types: []TypeFact{
			{Name: "char", Size: f.sizeofChar},
			{Name: "int", Size: f.sizeofInt},
			{Name: "intptr_t", Size: f.sizeofIntptr},
			{Name: "size_t", Size: f.sizeofSize},
		},
		Constants: []Constant{
			{Name: "EOF", Value: f.eof},
			{Name: "STDIN_FD", Value: f.stdinFD},
			{Name: "STDOUT_FD", Value: f.stdoutFD},
			{Name: "STDERR_FD", Value: f.stderrFD},
		},
	}
}

// facts is what a probe reads from the build environment.
type facts struct {
	charBit      int
	sizeofChar   int
	sizeofInt    int
	sizeofIntptr int
	sizeofSize   int
	eof          int
	stdinFD      int
	stdoutFD     int
	stderrFD     int
}
