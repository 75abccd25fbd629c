package formatter

import (
	"strconv"
	"strings"

	"github.com/packlog/packlog/core"
)

// Render expands a format string against its decoded arguments, consuming
// one argument per specifier token in order. Redacted arguments render as
// their privacy mask instead of their value. Tokens left without a matching
// argument, and token text that does not parse as a specifier, are copied
// through verbatim.
func Render(format string, args []core.Argument) string {
	var sb strings.Builder
	sb.Grow(len(format))
	next := 0

	for i := 0; i < len(format); {
		if format[i] != '%' {
			sb.WriteByte(format[i])
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			sb.WriteByte('%')
			i += 2
			continue
		}

		spec, end, ok := parseSpecifier(format, i)
		if !ok || next >= len(args) {
			sb.WriteByte(format[i])
			i++
			continue
		}
		sb.WriteString(spec.render(args[next]))
		next++
		i = end
	}
	return sb.String()
}

// specifier is one parsed format-string token.
type specifier struct {
	privacy string
	left    bool
	width   int
	conv    byte
}

// parseSpecifier parses the token starting at the '%' at format[start].
// It returns the parsed token and the index just past it.
func parseSpecifier(format string, start int) (specifier, int, bool) {
	var spec specifier
	i := start + 1

	if i < len(format) && format[i] == '{' {
		rbrace := strings.IndexByte(format[i:], '}')
		if rbrace == -1 {
			return spec, 0, false
		}
		spec.privacy = format[i+1 : i+rbrace]
		i += rbrace + 1
	}
	if i < len(format) && format[i] == '-' {
		spec.left = true
		i++
	}
	for i < len(format) && format[i] >= '0' && format[i] <= '9' {
		spec.width = spec.width*10 + int(format[i]-'0')
		i++
	}
	// Length modifiers carry no rendering information beyond what the
	// decoded argument's size already tells us; skip them.
	for i < len(format) && (format[i] == 'h' || format[i] == 'l') {
		i++
	}
	if i >= len(format) {
		return spec, 0, false
	}
	switch format[i] {
	case 'd', 'u', 'x', 'o':
		spec.conv = format[i]
	default:
		return spec, 0, false
	}
	return spec, i + 1, true
}

// render formats one decoded argument according to the token.
func (s specifier) render(arg core.Argument) string {
	var text string
	switch {
	case s.privacy == "sensitive":
		text = "<sensitive>"
	case s.privacy == "private" || arg.Redacted():
		text = "<private>"
	case s.conv == 'd':
		text = strconv.FormatInt(arg.Int(), 10)
	case s.conv == 'x':
		text = strconv.FormatUint(arg.Uint(), 16)
	case s.conv == 'o':
		text = strconv.FormatUint(arg.Uint(), 8)
	default:
		text = strconv.FormatUint(arg.Uint(), 10)
	}

	if pad := s.width - len(text); pad > 0 {
		if s.left {
			return text + strings.Repeat(" ", pad)
		}
		return strings.Repeat(" ", pad) + text
	}
	return text
}
