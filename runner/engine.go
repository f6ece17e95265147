package runner

// This file contains the external test-execution engine boundary. The
// default implementation shells out to the configured engine command
// (pytest by default) once per (browser, test file) pair.

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"al.essio.dev/pkg/shellescape"
	"github.com/rs/zerolog"

	"github.com/xbrowse/xbrowse/browser"
)

// Invocation describes one engine run for a (browser, test file) pair.
type Invocation struct {
	Browser  browser.Kind
	TestFile string
	Headless bool
	// ReportPath is where the engine writes its JUnit XML result artifact.
	ReportPath string
}

// Output captures what one engine invocation produced on the console.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Engine runs one test file against one browser. A non-zero exit code is a
// normal Output (failing tests exit non-zero); an error return means the
// engine itself could not be run.
type Engine interface {
	Run(ctx context.Context, inv Invocation) (*Output, error)
}

// ExecEngine invokes an external engine command as a subprocess.
type ExecEngine struct {
	logger zerolog.Logger
	// Command is the engine argv prefix, e.g. ["python", "-m", "pytest"].
	command []string
}

// DefaultEngineCommand is the engine invoked when none is configured.
var DefaultEngineCommand = []string{"python", "-m", "pytest"}

// NewExecEngine returns an engine wrapping the given command. An empty
// command falls back to DefaultEngineCommand.
func NewExecEngine(logger zerolog.Logger, command []string) *ExecEngine {
	if len(command) == 0 {
		command = DefaultEngineCommand
	}
	return &ExecEngine{logger: logger, command: command}
}

// buildArgs assembles the full engine argv for one invocation.
func (e *ExecEngine) buildArgs(inv Invocation) []string {
	args := append([]string{}, e.command...)
	args = append(args,
		inv.TestFile,
		fmt.Sprintf("--browser=%s", inv.Browser),
		fmt.Sprintf("--junitxml=%s", inv.ReportPath),
		"-v",
		"--tb=short",
	)
	if inv.Headless {
		args = append(args, "--headless")
	}
	return args
}

func (e *ExecEngine) Run(ctx context.Context, inv Invocation) (*Output, error) {
	args := e.buildArgs(inv)
	e.logger.Debug().
		Str("browser", inv.Browser.String()).
		Str("test_file", inv.TestFile).
		Str("command", shellescape.QuoteCommand(args)).
		Msg("Invoking test engine")

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	// Capture output for parsing while still displaying it live.
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(os.Stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderrBuf)

	err := cmd.Run()
	out := &Output{Stdout: stdoutBuf.String(), Stderr: stderrBuf.String()}

	if err != nil {
		// A deadline kill also surfaces as an ExitError; the context is
		// the authority on whether the process died or the tests failed.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("test engine did not finish: %w", ctxErr)
		}

		// Failing tests are expected to exit non-zero; only a process that
		// could not run at all is an engine fault.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			e.logger.Info().
				Int("exit_code", out.ExitCode).
				Str("test_file", inv.TestFile).
				Msg("Engine completed with failures")
			return out, nil
		}
		return nil, fmt.Errorf("failed to start test engine: %w", err)
	}

	return out, nil
}

// faultKind classifies an engine or driver fault into a short error kind
// for the failed record it produces.
func faultKind(err error) string {
	var driverFault *browser.DriverFault
	switch {
	case errors.As(err, &driverFault):
		return "DriverFault"
	case errors.Is(err, browser.ErrUnsupportedBrowser):
		return "UnsupportedBrowser"
	case errors.Is(err, exec.ErrNotFound):
		return "EngineNotFound"
	case errors.Is(err, context.DeadlineExceeded):
		return "Timeout"
	default:
		return "ExecutionError"
	}
}
