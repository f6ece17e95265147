package browser

// This file contains session acquisition and the best-effort version probe.
// A session is a short-lived handle on a browser instance; the default
// implementation shells out to the installed binary.

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/xbrowse/xbrowse/config"
	"github.com/xbrowse/xbrowse/retry"
)

const (
	probeAttempts = 3
	probeDelay    = 2 * time.Second
)

// Session is a live browser handle. Capabilities exposes at least
// "browserVersion"; Release must be called when done.
type Session interface {
	Capabilities() map[string]string
	Release() error
}

// binarySession wraps a locally installed browser binary.
type binarySession struct {
	kind Kind
	caps map[string]string
}

func (s *binarySession) Capabilities() map[string]string { return s.caps }
func (s *binarySession) Release() error                  { return nil }

// Manager creates sessions for the browsers enabled in the configuration
// and installed on this system.
type Manager struct {
	logger    zerolog.Logger
	cfg       *config.Browsers
	available map[Kind]bool
}

// NewManager detects installed browsers once and returns a manager bound to
// the given configuration.
func NewManager(logger zerolog.Logger, cfg *config.Browsers) *Manager {
	available := Detect()
	logger.Info().
		Bool("chrome", available[Chrome]).
		Bool("firefox", available[Firefox]).
		Bool("edge", available[Edge]).
		Bool("safari", available[Safari]).
		Msg("Detected browsers")
	return &Manager{logger: logger, cfg: cfg, available: available}
}

// Available reports, per supported browser, whether it is both enabled in
// the configuration and installed on this system.
func (m *Manager) Available() map[Kind]bool {
	out := make(map[Kind]bool, len(Kinds))
	for _, k := range Kinds {
		out[k] = m.available[k] && m.cfg.Settings(k.String()).Enabled
	}
	return out
}

// Acquire opens a session for k. It returns ErrDisabled or ErrNotInstalled
// when the browser cannot be used, and a *DriverFault for unexpected
// failures while starting the session.
func (m *Manager) Acquire(k Kind) (Session, error) {
	settings := m.cfg.Settings(k.String())
	if !settings.Enabled {
		return nil, fmt.Errorf("%s: %w", k, ErrDisabled)
	}
	if !m.available[k] {
		return nil, fmt.Errorf("%s: %w", k, ErrNotInstalled)
	}

	binary, ok := binaryPath(k)
	if !ok {
		return nil, fmt.Errorf("%s: %w", k, ErrNotInstalled)
	}

	m.logger.Debug().Str("browser", k.String()).Str("binary", binary).Msg("Acquiring browser session")

	var version string
	err := retry.Do(m.logger, probeAttempts, probeDelay, func() error {
		v, err := probeVersion(binary)
		if err != nil {
			// The binary exists but did not respond; treat as transient,
			// version probes are known to flake while a browser updates.
			return retry.Transient(err)
		}
		version = v
		return nil
	})
	if err != nil {
		return nil, &DriverFault{Browser: k, Op: "version probe", Err: err}
	}

	return &binarySession{
		kind: k,
		caps: map[string]string{"browserVersion": version},
	}, nil
}

// Versions probes each requested browser once and returns identifier ->
// version string. Probe failures are swallowed and recorded as "Unknown".
func (m *Manager) Versions(kinds []Kind) map[string]string {
	versions := make(map[string]string, len(kinds))
	for _, k := range kinds {
		session, err := m.Acquire(k)
		if err != nil {
			m.logger.Warn().Err(err).Str("browser", k.String()).Msg("Failed to probe browser version")
			versions[k.String()] = "Unknown"
			continue
		}
		version := session.Capabilities()["browserVersion"]
		if version == "" {
			version = "Unknown"
		}
		versions[k.String()] = version
		if err := session.Release(); err != nil {
			m.logger.Debug().Err(err).Str("browser", k.String()).Msg("Failed to release probe session")
		}
	}
	return versions
}

// probeVersion runs `<binary> --version` and extracts the version token.
func probeVersion(binary string) (string, error) {
	var out bytes.Buffer
	cmd := exec.Command(binary, "--version")
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to run version probe: %w", err)
	}
	return parseVersion(out.String()), nil
}

// parseVersion picks the first dotted numeric token out of version output
// like "Google Chrome 126.0.6478.127" or "Mozilla Firefox 127.0".
func parseVersion(output string) string {
	for _, field := range strings.Fields(output) {
		if field == "" || field[0] < '0' || field[0] > '9' {
			continue
		}
		if strings.Contains(field, ".") {
			return field
		}
	}
	return "Unknown"
}
