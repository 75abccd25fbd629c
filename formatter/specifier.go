package formatter

import (
	"strconv"
	"strings"

	"github.com/packlog/packlog/core"
)

// Specifier builds the format-string token for one fixed-width integer
// argument. It is a pure function of its inputs: the same type, mode,
// alignment, and privacy always produce the same token. bits must be one of
// 8, 16, 32, or 64.
func Specifier(bits int, signed bool, mode core.FormatMode, align core.Alignment, privacy core.Privacy) string {
	var sb strings.Builder
	sb.WriteByte('%')
	switch privacy {
	case core.Private:
		sb.WriteString("{private}")
	case core.Sensitive:
		sb.WriteString("{sensitive}")
	}
	if align != core.AlignNone {
		if align.Left() {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(align.Width()))
	}
	sb.WriteString(lengthModifier(bits))
	sb.WriteByte(conversion(mode, signed))
	return sb.String()
}

// lengthModifier returns the printf length modifier for an integer bit width.
func lengthModifier(bits int) string {
	switch bits {
	case 8:
		return "hh"
	case 16:
		return "h"
	case 32:
		return ""
	default:
		return "ll"
	}
}

// conversion returns the conversion character for a format mode. Hex and
// octal render the raw bit pattern, so signedness only matters for decimal.
func conversion(mode core.FormatMode, signed bool) byte {
	switch mode {
	case core.Hex:
		return 'x'
	case core.Octal:
		return 'o'
	default:
		if signed {
			return 'd'
		}
		return 'u'
	}
}
