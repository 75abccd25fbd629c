package logger

import (
	"github.com/packlog/packlog/core"
)

// Option adjusts how one interpolated argument is formatted and redacted.
type Option func(*argOptions)

type argOptions struct {
	mode    core.FormatMode
	align   core.Alignment
	privacy core.Privacy
}

func applyOptions(opts []Option) argOptions {
	var o argOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Hex renders the argument in lowercase hexadecimal
var Hex Option = func(o *argOptions) { o.mode = core.Hex }

// Octal renders the argument in octal
var Octal Option = func(o *argOptions) { o.mode = core.Octal }

// Private redacts the argument from rendered output
var Private Option = func(o *argOptions) { o.privacy = core.Private }

// Sensitive redacts the argument and flags it for masking
var Sensitive Option = func(o *argOptions) { o.privacy = core.Sensitive }

// Left pads the rendered argument on the right to at least width columns
func Left(width int) Option {
	return func(o *argOptions) { o.align = core.AlignLeft(width) }
}

// Right pads the rendered argument on the left to at least width columns
func Right(width int) Option {
	return func(o *argOptions) { o.align = core.AlignRight(width) }
}
