package generator

import (
	"fmt"
	"strings"
	"text/template"
)

const (
	// WrapWidth is the number of literals per line in the array body.
	WrapWidth = 8
	// indent precedes every body line, including the first.
	indent = "    "
)

// FormatLiterals renders data as comma-separated 0xNN literals.
// A newline and indent follow the separator after every WrapWidth-th literal,
// so a line break never trails the last literal.
func FormatLiterals(data []byte) string {
	var sb strings.Builder
	// "0xNN," plus the amortized line break.
	sb.Grow(len(data)*5 + len(data)/WrapWidth*(1+len(indent)))
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(',')
			if i%WrapWidth == 0 {
				sb.WriteByte('\n')
				sb.WriteString(indent)
			}
		}
		fmt.Fprintf(&sb, "0x%02X", b)
	}
	return sb.String()
}

// GetHeaderFuncMap returns the helpers available to the header template.
func GetHeaderFuncMap() template.FuncMap {
	return template.FuncMap{
		"literals": FormatLiterals,
		"upper":    strings.ToUpper,
	}
}
