package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/xbrowse/xbrowse/browser"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name    string
		command []string
		inv     Invocation
		want    []string
	}{
		{
			name:    "default headed",
			command: nil,
			inv: Invocation{
				Browser:    browser.Chrome,
				TestFile:   "tests/test_login.py",
				ReportPath: "/tmp/results.xml",
			},
			want: []string{
				"python", "-m", "pytest",
				"tests/test_login.py",
				"--browser=chrome",
				"--junitxml=/tmp/results.xml",
				"-v", "--tb=short",
			},
		},
		{
			name:    "headless appends flag",
			command: nil,
			inv: Invocation{
				Browser:    browser.Firefox,
				TestFile:   "tests/test_cart.py",
				Headless:   true,
				ReportPath: "/tmp/results.xml",
			},
			want: []string{
				"python", "-m", "pytest",
				"tests/test_cart.py",
				"--browser=firefox",
				"--junitxml=/tmp/results.xml",
				"-v", "--tb=short",
				"--headless",
			},
		},
		{
			name:    "custom engine command",
			command: []string{"pytest"},
			inv: Invocation{
				Browser:    browser.Edge,
				TestFile:   "test_a.py",
				ReportPath: "r.xml",
			},
			want: []string{
				"pytest",
				"test_a.py",
				"--browser=edge",
				"--junitxml=r.xml",
				"-v", "--tb=short",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExecEngine(zerolog.Nop(), tt.command)
			require.Equal(t, tt.want, e.buildArgs(tt.inv))
		})
	}
}

func TestBuildArgsDoesNotMutateCommand(t *testing.T) {
	command := []string{"python", "-m", "pytest"}
	e := NewExecEngine(zerolog.Nop(), command)
	e.buildArgs(Invocation{Browser: browser.Chrome, TestFile: "a.py", ReportPath: "r.xml"})
	e.buildArgs(Invocation{Browser: browser.Firefox, TestFile: "b.py", ReportPath: "r.xml"})
	require.Equal(t, []string{"python", "-m", "pytest"}, command)
}

func TestRunDeadlineIsAFault(t *testing.T) {
	// The trailing # swallows the args buildArgs appends.
	e := NewExecEngine(zerolog.Nop(), []string{"sh", "-c", "sleep 5 #"})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	out, err := e.Run(ctx, Invocation{Browser: browser.Chrome, TestFile: "a.py", ReportPath: "r.xml"})
	require.Error(t, err)
	require.Nil(t, out)
	require.Equal(t, "Timeout", faultKind(err))
}

func TestRunNonZeroExitIsNormalOutput(t *testing.T) {
	e := NewExecEngine(zerolog.Nop(), []string{"sh", "-c", "echo 1 failed; exit 3 #"})

	out, err := e.Run(context.Background(), Invocation{Browser: browser.Chrome, TestFile: "a.py", ReportPath: "r.xml"})
	require.NoError(t, err)
	require.Equal(t, 3, out.ExitCode)
	require.Contains(t, out.Stdout, "1 failed")
}

func TestFaultKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "driver fault", err: &browser.DriverFault{Browser: browser.Chrome, Op: "start", Err: errors.New("boom")}, want: "DriverFault"},
		{name: "unsupported browser", err: browser.ErrUnsupportedBrowser, want: "UnsupportedBrowser"},
		{name: "engine not found", err: exec.ErrNotFound, want: "EngineNotFound"},
		{name: "wrapped not found", err: &exec.Error{Name: "pytest", Err: exec.ErrNotFound}, want: "EngineNotFound"},
		{name: "timeout", err: context.DeadlineExceeded, want: "Timeout"},
		{name: "anything else", err: errors.New("fork/exec failed"), want: "ExecutionError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, faultKind(tt.err))
		})
	}
}
