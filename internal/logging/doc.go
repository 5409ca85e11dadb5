// Package logging provides structured logging for tasktracker.
//
// This package wraps Go's log/slog to write JSON lines to a log file while
// the terminal UI owns stdout. Logging is off by default; when enabled it is
// the only record of what the UI did, since task state itself is never
// persisted.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("task added", "task_id", 3, "count", 4)
//
// # Child Loggers
//
// [Logger.WithComponent] and [Logger.With] return child loggers that carry
// persistent attributes:
//
//	tl := logger.WithComponent("tasklist")
//	tl.Debug("task toggled", "index", 0, "checked", true)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"task toggled","component":"tasklist","index":0,"checked":true}
//
// # Rotation
//
// [NewLoggerWithRotation] writes through a [RotatingWriter] that rotates the
// file by size. Backups are named tasktracker.log.1 (newest) through
// tasktracker.log.N, with a .gz suffix when compression is enabled.
//
// # Testing
//
// [NopLogger] discards everything. A nil *Logger is also safe to call and
// discards everything, so components can take an optional logger.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use.
package logging
