// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the CLI (colored console output on a
// terminal) and for scripted use (JSON).
//
// # Context Awareness
//
// The WithRayID helper reads the RayID that core/middleware stores in the request
// context and attaches it to the log entry, so the client's log lines can be matched
// with the X-Ray-ID the backend received.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Import started")
//
//	l := logger.WithRayID(log, ctx)
//	l.Error("Import failed", zap.Error(err))
package logger
