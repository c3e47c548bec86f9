package runner

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"nvim-bootstrap/internal/logger"
)

// CommandError reports an external command that exited nonzero or could not
// be spawned at all. Command holds the full command line as the user saw it
// logged; Err is the underlying exec error.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner executes external command lines synchronously. It is the single
// fail-fast primitive of the provisioning run: a failed command produces
// exactly one error log entry and a *CommandError that the top-level command
// handler turns into exit status 1. The runner itself never exits the
// process, so gate and step logic stay testable in isolation.
type Runner struct {
	log *logger.Logger
}

// New returns a Runner logging through log.
func New(log *logger.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes commandLine as a child process with the parent's terminal
// streams attached, so interactive output (package-manager progress bars,
// clone counters) is visible in real time rather than buffered.
// Exit 0 logs a confirmation line naming the command; any failure logs one
// error line with the command text and underlying error, then returns a
// *CommandError. No retry.
func (r *Runner) Run(commandLine string) error {
	name, args, err := split(commandLine)
	if err != nil {
		r.log.Error("Command failed: %s: %v", commandLine, err)
		return &CommandError{Command: commandLine, Err: err}
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.log.Debug("Running command: %s", commandLine)
	if err := cmd.Run(); err != nil {
		r.log.Error("Command failed: %s: %v", commandLine, err)
		return &CommandError{Command: commandLine, Err: err}
	}

	r.log.Info("Successfully executed: %s", commandLine)
	return nil
}

// Output executes commandLine with captured streams and returns its trimmed
// combined output. Used for version probes, where a failure is an expected
// answer ("not installed") rather than a fatal event — nothing is logged
// here, the caller decides the severity.
func (r *Runner) Output(commandLine string) (string, error) {
	name, args, err := split(commandLine)
	if err != nil {
		return "", err
	}

	r.log.Debug("Probing: %s", commandLine)
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("probe %q failed: %w", commandLine, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// split breaks a command line into the executable name and its arguments.
// Whitespace splitting only — provisioning command lines carry no quoting.
func split(commandLine string) (string, []string, error) {
	fields := strings.Fields(commandLine)
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("empty command line")
	}
	return fields[0], fields[1:], nil
}
