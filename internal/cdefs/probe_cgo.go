//go:build cgo

package cdefs

/*
#include <stdio.h>
#include <stdint.h>
#include <limits.h>

static int cdefs_char_bit(void) { return CHAR_BIT; }
static int cdefs_eof(void) { return EOF; }
static int cdefs_stdin_fd(void) { return fileno(stdin); }
static int cdefs_stdout_fd(void) { return fileno(stdout); }
static int cdefs_stderr_fd(void) { return fileno(stderr); }
*/
import "C"

// probe asks the host C toolchain.
func probe() facts {
	return facts{
		charBit:      int(C.cdefs_char_bit()),
		sizeofChar:   int(C.sizeof_char),
		sizeofInt:    int(C.sizeof_int),
		sizeofIntptr: int(C.sizeof_intptr_t),
		sizeofSize:   int(C.sizeof_size_t),
		eof:          int(C.cdefs_eof()),
		stdinFD:      int(C.cdefs_stdin_fd()),
		stdoutFD:     int(C.cdefs_stdout_fd()),
		stderrFD:     int(C.cdefs_stderr_fd()),
	}
}
