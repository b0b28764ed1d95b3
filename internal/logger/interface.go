package logger

import "codeberg.org/mutker/erroror"

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	ErrorWithKind(err erroror.Error) *LogEvent
	Fatal() *LogEvent
}
