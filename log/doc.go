// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package maintains a default logger writing to stderr, which keeps
// stdout free for converted output and plugin protocol messages. Both the
// default logger and explicitly constructed [Logger] values are configured
// with functional options:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//	log.Info("conversion complete", slog.Int("exports", n))
//
// Two output formats are supported, [FormatJSON] (default) and
// [FormatText]; the text format optionally renders with colorized pretty
// printing. Each logging level has a context-aware variant; the
// context-unaware functions delegate to them via [DefaultContextProvider].
package log
