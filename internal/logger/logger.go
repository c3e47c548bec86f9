package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color" // Colored console output, matching log severity
)

// Logger appends timestamped lines to a single append-only log file and
// mirrors each message to the console with a severity color.
//
// The logger is an explicitly passed capability rather than a package-level
// global: it is opened once at process start, handed to every component that
// needs it, and closed (with a final flush) on every exit path, including
// fatal ones. File lines are plain text so the log stays grep-able; color
// only ever goes to the console.
type Logger struct {
	file   *os.File  // Append-only log file, exclusively owned by this process
	stdout io.Writer // Console stream for info/debug messages
	stderr io.Writer // Console stream for warnings and errors
	debug  bool      // Whether Debug messages are emitted at all

	infoColor  *color.Color
	warnColor  *color.Color
	errColor   *color.Color
	debugColor *color.Color
}

// New opens (or creates) the log file at path in append mode and returns a
// ready Logger mirroring to the process's stdout/stderr.
// A log file that cannot be opened is a startup-fatal condition for the
// caller; New just reports it.
func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return &Logger{
		file:       f,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		infoColor:  color.New(color.FgGreen),     // Green for success/normal info
		warnColor:  color.New(color.FgHiMagenta), // Bright magenta for caution
		errColor:   color.New(color.FgRed),       // Red for errors
		debugColor: color.New(color.FgCyan),      // Cyan for debug chatter
	}, nil
}

// EnableDebug turns on Debug output. Off by default; toggled by the --debug flag.
func (l *Logger) EnableDebug() {
	l.debug = true
}

// SetConsole redirects the console mirror streams. Tests use this to capture
// output; the log file is unaffected.
func (l *Logger) SetConsole(stdout, stderr io.Writer) {
	l.stdout = stdout
	l.stderr = stderr
}

// Info logs an informational message: appended to the file with a timestamp,
// mirrored in green to stdout.
func (l *Logger) Info(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	l.append(fmt.Sprintf("[%s] %s", timestamp(), msg))
	_, _ = l.infoColor.Fprintln(l.stdout, msg)
}

// Warn logs a non-fatal caution message with a [WARN] marker in the file.
func (l *Logger) Warn(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	l.append(fmt.Sprintf("[%s] [WARN] %s", timestamp(), msg))
	_, _ = l.warnColor.Fprintln(l.stderr, msg)
}

// Error logs an error message with an [ERROR] marker in the file, mirrored
// in red to stderr.
func (l *Logger) Error(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	l.append(fmt.Sprintf("[%s] [ERROR] %s", timestamp(), msg))
	_, _ = l.errColor.Fprintln(l.stderr, msg)
}

// Debug logs a console-only diagnostic message in cyan when debug output is
// enabled, and is a no-op otherwise. Debug chatter never lands in the file,
// which records the durable provisioning history only.
func (l *Logger) Debug(format string, a ...any) {
	if !l.debug {
		return
	}
	_, _ = l.debugColor.Fprintf(l.stdout, format+"\n", a...)
}

// Close flushes and closes the log file. Safe to call exactly once; the
// caller arranges for it to run on every exit path so that error lines are
// durably written before the process terminates.
func (l *Logger) Close() error {
	if err := l.file.Sync(); err != nil {
		_ = l.file.Close()
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// append writes one line to the log file. File write failures surface on the
// console but do not abort the run; the console copy is still emitted.
func (l *Logger) append(line string) {
	if _, err := fmt.Fprintln(l.file, line); err != nil {
		fmt.Fprintf(os.Stderr, "log write failed: %v\n", err)
	}
}

// timestamp returns the current time in RFC 3339 form, the format used for
// every log file line.
func timestamp() string {
	return time.Now().Format(time.RFC3339)
}
