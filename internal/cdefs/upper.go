package cdefs

import "strings"

// UpperIdent upper-cases the ASCII letters of a C identifier and leaves every
// other byte alone. There is no length limit.
func UpperIdent(name string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, name)
}
