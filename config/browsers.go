package config

// This file contains the browser definitions: which browsers are enabled
// and how their sessions are configured. Stored as YAML
// (conventionally config/browsers.yaml).

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// BrowserSettings configures a single browser.
type BrowserSettings struct {
	Enabled  bool     `yaml:"enabled"`
	Headless bool     `yaml:"headless"`
	Options  []string `yaml:"options"`
}

// TestSettings holds session-level tuning shared by all browsers.
type TestSettings struct {
	// Implicit wait in seconds applied to every session
	ImplicitWait int `yaml:"implicit_wait"`
}

// Browsers is the browser configuration document.
type Browsers struct {
	Browsers     map[string]BrowserSettings `yaml:"browsers"`
	TestSettings TestSettings               `yaml:"test_settings"`
}

// DefaultBrowsers returns the compiled-in browser configuration used when
// no config file exists.
func DefaultBrowsers() *Browsers {
	return &Browsers{
		Browsers: map[string]BrowserSettings{
			"chrome":  {Enabled: true},
			"firefox": {Enabled: true},
			"edge":    {Enabled: true},
			"safari":  {Enabled: false},
		},
		TestSettings: TestSettings{ImplicitWait: 10},
	}
}

// LoadBrowsers reads the browser configuration from path. A missing file is
// not an error: the defaults are returned and a warning is logged.
func LoadBrowsers(logger zerolog.Logger, path string) (*Browsers, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Warn().Str("path", path).Msg("Browser config not found, using defaults")
		return DefaultBrowsers(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read browser config: %w", err)
	}

	var cfg Browsers
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse browser config %s: %w", path, err)
	}
	if cfg.Browsers == nil {
		cfg.Browsers = DefaultBrowsers().Browsers
	}
	return &cfg, nil
}

// Save writes the configuration to path as YAML.
func (b *Browsers) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal browser config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write browser config: %w", err)
	}
	return nil
}

// Settings returns the settings for name, falling back to a disabled entry
// for browsers absent from the document.
func (b *Browsers) Settings(name string) BrowserSettings {
	if s, ok := b.Browsers[name]; ok {
		return s
	}
	return BrowserSettings{}
}

// SetHeadless forces the headless flag for every configured browser.
func (b *Browsers) SetHeadless(headless bool) {
	for name, s := range b.Browsers {
		s.Headless = headless
		b.Browsers[name] = s
	}
}
