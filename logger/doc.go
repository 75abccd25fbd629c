// Package logger provides the public logging API: the Message builder that
// assembles one interpolated log statement, and the Logger that gates it by
// level and hands the flushed record to a handler.
//
// Messages are built through a callback so that filtered-out log calls cost
// almost nothing: when the level check fails, the callback never runs, no
// context is allocated, and none of the argument expressions are evaluated.
//
//	log.Info(func(m *logger.Message) {
//		m.Literal("served ").
//			Int(func() int { return served }).
//			Literal(" requests for user ").
//			Int64(func() int64 { return userID }, logger.Hex, logger.Private)
//	})
//
// Argument expressions are closures and stay unevaluated until the message
// is flushed, immediately after the callback returns. Arguments past the
// configured cap are dropped entirely and their expressions never run.
//
// Following the unified-logging convention, a logger built without an
// explicit level gates at LevelDefault, so Debug and Info messages are
// discarded until the level is lowered.
package logger
