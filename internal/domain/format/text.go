package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// Truncate cuts s to at most max runes. No marker is appended.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

// Ellipsize cuts s to at most max runes, ending in "..." when shortened.
func Ellipsize(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= len(ellipsis) {
		return Truncate(s, max)
	}
	return Truncate(s, max-len(ellipsis)) + ellipsis
}

// Filename builds Orcamento_<Client_Name>_<NNNN>.pdf.
// Whitespace runs become a single underscore; path and quote characters are dropped.
func Filename(clientName string, n int) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', '\'':
			return -1
		}
		return r
	}, clientName)
	return fmt.Sprintf("Orcamento_%s_%04d.pdf", strings.Join(strings.Fields(name), "_"), n%10000)
}
