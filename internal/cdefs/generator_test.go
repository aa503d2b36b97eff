package cdefs

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lp64() *Platform {
	return &Platform{
		CharBit: 8,
		Types: []TypeFact{
			{Name: "char", Size: 1},
			{Name: "int", Size: 4},
			{Name: "intptr_t", Size: 8},
			{Name: "size_t", Size: 8},
		},
		Constants: []Constant{
			{Name: "EOF", Value: -1},
			{Name: "STDIN_FD", Value: 0},
			{Name: "STDOUT_FD", Value: 1},
			{Name: "STDERR_FD", Value: 2},
		},
	}
}

const wantLP64 = `#ifndef C_DEFS_LLH
#define C_DEFS_LLH

;**********************************************************************
; THIS FILE IS AUTOMATICALLY GENERATED BY c_defs.  DO NOT EDIT; CHANGE
; THE SOURCE CODE IN cmd/c_defs.
;**********************************************************************

;**********************************************************************
; c_defs.llh

; Make C language quantities visible in LLVM code.

;**********************************************************************

; C and unix types
%c_char = type i8
#define C_CHAR_SIZEOF 1
#define C_CHAR_BITSOF 8

%c_int = type i32
#define C_INT_SIZEOF 4
#define C_INT_BITSOF 32

%c_intptr_t = type i64
#define C_INTPTR_T_SIZEOF 8
#define C_INTPTR_T_BITSOF 64

%c_size_t = type i64
#define C_SIZE_T_SIZEOF 8
#define C_SIZE_T_BITSOF 64

; C stdio constants
#define C_EOF -1
#define C_STDIN_FD 0
#define C_STDOUT_FD 1
#define C_STDERR_FD 2

#endif
`

func TestGenerate_LP64(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, lp64()))
	require.Equal(t, wantLP64, buf.String())
}

func TestGenerate_IncludeGuard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, Native()))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "#ifndef C_DEFS_LLH\n#define C_DEFS_LLH\n"))
	require.True(t, strings.HasSuffix(out, "\n#endif\n"))
	require.Equal(t, 1, strings.Count(out, "#ifndef"))
	require.Equal(t, 1, strings.Count(out, "#endif"))
}

func TestGenerate_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Generate(&first, Native()))
	require.NoError(t, Generate(&second, Native()))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestGenerate_NativeValues(t *testing.T) {
	p := Native()
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, p))
	out := buf.String()

	for _, ty := range p.Types {
		upper := UpperIdent(ty.Name)
		assert.Contains(t, out, fmt.Sprintf("%%c_%s = type i%d\n", ty.Name, ty.Size*p.CharBit))
		assert.Contains(t, out, fmt.Sprintf("#define C_%s_SIZEOF %d\n", upper, ty.Size))
		assert.Contains(t, out, fmt.Sprintf("#define C_%s_BITSOF %d\n", upper, ty.Size*p.CharBit))
	}
	for _, c := range p.Constants {
		assert.Contains(t, out, fmt.Sprintf("#define C_%s %d\n", c.Name, c.Value))
	}
	assert.Contains(t, out, "#define C_CHAR_SIZEOF 1\n")
	assert.Contains(t, out, "#define C_CHAR_BITSOF 8\n")
}

func TestGenerate_LongTypeNameIsNotTruncated(t *testing.T) {
	name := strings.Repeat("x", 2048)
	p := &Platform{CharBit: 8, Types: []TypeFact{{Name: name, Size: 2}}}

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, p))
	require.Contains(t, buf.String(), "#define C_"+strings.Repeat("X", 2048)+"_SIZEOF 2\n")
}

func TestGenerate_InvalidPlatform(t *testing.T) {
	tests := []struct {
		name string
		p    *Platform
	}{
		{name: "nil", p: nil},
		{name: "zero CHAR_BIT", p: &Platform{}},
		{name: "unnamed type", p: &Platform{CharBit: 8, Types: []TypeFact{{Size: 1}}}},
		{name: "zero size", p: &Platform{CharBit: 8, Types: []TypeFact{{Name: "int"}}}},
		{name: "unnamed constant", p: &Platform{CharBit: 8, Constants: []Constant{{Value: 3}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Generate(&buf, tt.p)
			require.Error(t, err)
			require.Zero(t, buf.Len(), "nothing may be written for an invalid platform")
		})
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestGenerate_WriteError(t *testing.T) {
	errFull := errors.New("no space left on device")
	err := Generate(failingWriter{err: errFull}, lp64())
	require.ErrorIs(t, err, errFull)
}
