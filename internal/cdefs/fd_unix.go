//go:build !cgo && unix

package cdefs

import "golang.org/x/sys/unix"

var (
	stdinFD  = unix.Stdin
	stdoutFD = unix.Stdout
	stderrFD = unix.Stderr
)
