package browser

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/xbrowse/xbrowse/config"
)

func TestAcquireDisabledBrowser(t *testing.T) {
	cfg := &config.Browsers{
		Browsers: map[string]config.BrowserSettings{
			"chrome": {Enabled: false},
		},
	}
	m := NewManager(zerolog.Nop(), cfg)

	_, err := m.Acquire(Chrome)
	require.ErrorIs(t, err, ErrDisabled)
}

func TestAcquireNotInstalled(t *testing.T) {
	cfg := &config.Browsers{
		Browsers: map[string]config.BrowserSettings{
			"edge": {Enabled: true},
		},
	}
	m := NewManager(zerolog.Nop(), cfg)
	m.available[Edge] = false

	_, err := m.Acquire(Edge)
	require.ErrorIs(t, err, ErrNotInstalled)
}

func TestAvailableRequiresEnabledAndInstalled(t *testing.T) {
	cfg := &config.Browsers{
		Browsers: map[string]config.BrowserSettings{
			"chrome":  {Enabled: true},
			"firefox": {Enabled: false},
		},
	}
	m := NewManager(zerolog.Nop(), cfg)
	m.available = map[Kind]bool{Chrome: true, Firefox: true, Edge: true, Safari: false}

	avail := m.Available()
	require.True(t, avail[Chrome])
	require.False(t, avail[Firefox]) // installed but disabled
	require.False(t, avail[Edge])    // installed but not configured
	require.False(t, avail[Safari])
}

func TestVersionsSwallowsProbeFailures(t *testing.T) {
	cfg := &config.Browsers{
		Browsers: map[string]config.BrowserSettings{
			"chrome": {Enabled: true},
		},
	}
	m := NewManager(zerolog.Nop(), cfg)
	m.available[Chrome] = false // force an acquire failure

	versions := m.Versions([]Kind{Chrome})
	require.Equal(t, map[string]string{"chrome": "Unknown"}, versions)
}
