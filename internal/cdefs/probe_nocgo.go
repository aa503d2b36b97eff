//go:build !cgo

package cdefs

import "unsafe"

// Without a C compiler the facts come from the C ABIs of the Go ports:
// every one of them has 8-bit bytes, a 32-bit int and pointer-sized
// intptr_t and size_t.
func probe() facts {
	ptr := int(unsafe.Sizeof(uintptr(0)))
	return facts{
		charBit:      8,
		sizeofChar:   1,
		sizeofInt:    4,
		sizeofIntptr: ptr,
		sizeofSize:   ptr,
		eof:          -1,
		stdinFD:      stdinFD,
		stdoutFD:     stdoutFD,
		stderrFD:     stderrFD,
	}
}
