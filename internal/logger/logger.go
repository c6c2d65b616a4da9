// Package logger configures process-wide logging for molkit.
//
// Init is called once by the entry point. Every line has the form
//
//	[<timestamp>] <LEVEL>:<logger-name>: <message>
//
// and goes to stderr unless SetOutput redirects it. Structured fields added
// through zerolog follow the message as key=value pairs.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout used inside the brackets.
const TimeFormat = "2006-01-02 15:04:05.000"

// RootName is the logger name used by the package-level helpers.
const RootName = "molkit"

var (
	mu          sync.RWMutex
	initialized bool
	verbose     bool
	level       = zerolog.InfoLevel
	output      io.Writer = os.Stderr

	root = Named(RootName)
)

// Options configures Init. The zero value logs INFO and above to stderr.
type Options struct {
	// Level is the minimum severity name ("debug", "info", "warn", "error").
	// Empty means "info".
	Level string

	// Output receives log lines. Nil means os.Stderr.
	Output io.Writer

	// Verbose lowers the minimum severity to debug.
	Verbose bool
}

// Init configures the process-wide sink. Only the first call has an effect;
// later calls return nil without changing anything. Use SetVerbose and
// SetOutput to adjust the sink afterwards.
func Init(opts Options) error {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}

	if opts.Output != nil {
		output = opts.Output
	}
	level = lvl
	verbose = opts.Verbose
	zerolog.TimeFieldFormat = TimeFormat
	applyLevel()
	initialized = true
	return nil
}

// Initialized reports whether Init has run.
func Initialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return initialized
}

// ParseLevel maps a configuration string to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Named returns a logger whose lines carry name.
func Named(name string) zerolog.Logger {
	return zerolog.New(newConsoleWriter(name)).With().Timestamp().Logger()
}

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	applyLevel()
}

// SetLevel changes the minimum severity after Init.
func SetLevel(name string) error {
	lvl, err := ParseLevel(name)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	level = lvl
	applyLevel()
	return nil
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for all loggers.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug logs a formatted message at debug level.
func Debug(format string, args ...any) {
	root.Debug().Msgf(format, args...)
}

// Info logs a formatted message at info level.
func Info(format string, args ...any) {
	root.Info().Msgf(format, args...)
}

// Warn logs a formatted message at warn level.
func Warn(format string, args ...any) {
	root.Warn().Msgf(format, args...)
}

// Error logs a formatted message at error level.
func Error(format string, args ...any) {
	root.Error().Msgf(format, args...)
}

// applyLevel sets zerolog's global level (caller must hold lock).
func applyLevel() {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(level)
}

// sink forwards to the current output so loggers built before SetOutput
// follow the redirect.
type sink struct{}

func (sink) Write(p []byte) (int, error) {
	mu.RLock()
	w := output
	mu.RUnlock()
	return w.Write(p)
}

func newConsoleWriter(name string) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        sink{},
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatTimestamp: func(i any) string {
			return "[" + fmt.Sprint(i) + "]"
		},
		FormatLevel: func(i any) string {
			return levelName(i) + ":" + name + ":"
		},
	}
}

func levelName(i any) string {
	s, _ := i.(string)
	switch s {
	case "":
		return "NOTSET"
	case zerolog.LevelWarnValue:
		return "WARNING"
	case zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return "CRITICAL"
	default:
		return strings.ToUpper(s)
	}
}
