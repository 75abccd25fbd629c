// Package formatter owns the specifier grammar: it builds the format-string
// token describing one interpolated argument, and renders a format string
// back into display text from a decoded argument buffer. Producing and
// consuming the grammar live in one package so the two sides cannot drift.
//
// A specifier token has the shape
//
//	%{privacy}[-][width][length]conversion
//
// where the privacy annotation is "{private}" or "{sensitive}" and omitted
// for public arguments, "-" plus width left-aligns and a bare width
// right-aligns (no width means no padding), the length modifier encodes the
// integer's bit width ("hh" for 8, "h" for 16, empty for 32, "ll" for 64),
// and the conversion is 'd' for signed decimal, 'u' for unsigned decimal,
// 'x' for hex, or 'o' for octal. "%%" escapes a literal percent in message
// text.
//
// Rendering substitutes arguments into tokens in order. Redacted arguments
// render as "<private>" or "<sensitive>" in place of their value; alignment
// applies to the mask the same way it applies to a value.
package formatter
