// Package logger builds log/slog loggers with a small set of functional
// options and provides attribute helpers shared across the module.
//
// Usage:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevelName("debug"),
//		logger.WithAttr(logger.Component("isocode")),
//	)
//	log.Debug("lookup miss", logger.CodeSpace("country"), logger.Query("XX"))
//
// Discard returns a logger that writes nowhere; libraries use it as their
// default so that logging stays opt-in.
package logger
