package logging

import (
	"log/slog"
	"os"
)

// Logger is the gateway-wide structured logging seam, satisfied by
// *slog.Logger. Engine stderr noise and quota rejections land on Warn;
// Error is reserved for wiring and shutdown failures.
type Logger interface {
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// StdoutLogger is the default logger of every entrypoint.
var StdoutLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
