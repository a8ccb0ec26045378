package common

import (
	"path/filepath"
	"sync"

	"github.com/phuslu/log"
)

var (
	globalLogger *log.Logger
	loggerMu     sync.RWMutex
)

// GetLogger returns the process-wide logger, initializing a console-only
// fallback if InitLogger has not run yet.
func GetLogger() log.Logger {
	loggerMu.RLock()
	if globalLogger != nil {
		defer loggerMu.RUnlock()
		return *globalLogger
	}
	loggerMu.RUnlock()

	loggerMu.Lock()
	defer loggerMu.Unlock()
	if globalLogger == nil {
		l := consoleLogger(log.InfoLevel)
		globalLogger = &l
	}
	return *globalLogger
}

// InitLogger configures the process-wide logger with console output plus a
// rotating log file under logDir. The returned logger carries run_id on every
// entry so concurrent document builds can be correlated in the file output.
func InitLogger(logDir string, runID string, debug bool) log.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Context:    log.NewContext(nil).Str("run_id", runID).Value(),
		Writer: &log.MultiEntryWriter{
			&log.ConsoleWriter{
				ColorOutput:    true,
				EndWithMessage: true,
			},
			&log.FileWriter{
				Filename:     filepath.Join(logDir, "reportgen.log"),
				MaxSize:      20 * 1024 * 1024,
				MaxBackups:   3,
				LocalTime:    true,
				EnsureFolder: true,
			},
		},
	}

	globalLogger = &logger
	return logger
}

func consoleLogger(level log.Level) log.Logger {
	return log.Logger{
		Level:      level,
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			ColorOutput:    true,
			EndWithMessage: true,
		},
	}
}
