package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mrz1836/git-util/internal/config"
	"github.com/mrz1836/git-util/internal/constants"
	"github.com/mrz1836/git-util/internal/logging"
	"github.com/mrz1836/git-util/internal/tui"
)

// logFileWriter holds the log file writer for cleanup purposes.
var (
	logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup
	logFileMu     sync.Mutex     //nolint:gochecknoglobals // Protects logFileWriter
)

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// selectLevel determines the console log level from the flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// selectOutput returns the console log writer for stderr. A terminal gets the
// human-readable console writer, anything else gets JSON lines.
// Redaction runs on the JSON event, before the console writer formats it.
func selectOutput(stderr io.Writer, redactor *logging.Redactor) io.Writer {
	if isTerminal(stderr) {
		return logging.NewFilteringWriter(zerolog.ConsoleWriter{
			Out:        stderr,
			TimeFormat: time.Kitchen,
			NoColor:    !tui.HasColorSupport(),
		}, redactor)
	}
	return logging.NewFilteringWriter(stderr, redactor)
}

// InitLogger creates the logger for one run.
//
// The console receives events at the level chosen by the flags:
//   - verbose: Debug
//   - quiet: Error
//   - default: Warn
//
// Every debug event is also written to ~/.git-util/logs/git-util.log, rotated
// by lumberjack. If the file cannot be opened logging continues on the
// console only. Both destinations are redacted, and every event carries the
// run_id of this invocation.
func InitLogger(flags *GlobalFlags, stderr io.Writer, redactor *logging.Redactor) zerolog.Logger {
	consoleLevel := selectLevel(flags.Verbose, flags.Quiet)
	console := zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: selectOutput(stderr, redactor)},
		Level:  consoleLevel,
	}

	var writer io.Writer = &console
	level := consoleLevel
	if fileWriter, err := createLogFileWriter(redactor); err == nil {
		setLogFile(fileWriter)
		writer = zerolog.MultiLevelWriter(&console, fileWriter)
		level = zerolog.DebugLevel
	}

	logger := newLogger(writer, level, redactor)
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates a logger that writes every event at the flag
// level to w. This is primarily intended for testing purposes.
func InitLoggerWithWriter(flags *GlobalFlags, w io.Writer, redactor *logging.Redactor) zerolog.Logger {
	logger := newLogger(logging.NewFilteringWriter(w, redactor), selectLevel(flags.Verbose, flags.Quiet), redactor)
	setGlobalLogger(logger)
	return logger
}

func newLogger(w io.Writer, level zerolog.Level, redactor *logging.Redactor) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		Hook(logging.NewSensitiveDataHook(redactor)).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// setGlobalLogger points the zerolog/log package at the run's logger.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

func setLogFile(w io.WriteCloser) {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
	}
	logFileWriter = w
}

// CloseLogFile closes the log file writer if it was opened.
// This should be called during application shutdown.
func CloseLogFile() {
	logFileMu.Lock()
	defer logFileMu.Unlock()
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

// createLogFileWriter creates the rotating, redacting writer for the CLI log.
func createLogFileWriter(redactor *logging.Redactor) (io.WriteCloser, error) {
	logPath, err := LogFilePath()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}
	return logging.NewFilteringWriteCloser(lj, redactor), nil
}

// LogFilePath returns the path to the CLI log file.
func LogFilePath() (string, error) {
	dir, err := config.LogDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.CLILogFileName), nil
}
