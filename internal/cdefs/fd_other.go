//go:build !cgo && !unix

package cdefs

// Descriptor numbers of the C runtime's stdin, stdout and stderr.
const (
	stdinFD  = 0
	stdoutFD = 1
	stderrFD = 2
)
