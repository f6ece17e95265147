package browser

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedBrowser indicates an identifier outside the closed set
	// of supported browsers.
	ErrUnsupportedBrowser = errors.New("unsupported browser")

	// ErrNotInstalled indicates the browser binary was not found on this
	// system.
	ErrNotInstalled = errors.New("browser not installed")

	// ErrDisabled indicates the browser is disabled in the configuration.
	ErrDisabled = errors.New("browser disabled in configuration")
)

// DriverFault is an unexpected failure while creating or talking to a
// browser session.
type DriverFault struct {
	Browser Kind
	Op      string
	Err     error
}

func (f *DriverFault) Error() string {
	return fmt.Sprintf("%s driver fault during %s: %v", f.Browser, f.Op, f.Err)
}

func (f *DriverFault) Unwrap() error { return f.Err }
