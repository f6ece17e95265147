// Package browser manages the closed set of supported browsers: detecting
// which are installed, acquiring short-lived sessions, and probing versions.
package browser

import "fmt"

// Kind identifies a supported browser.
type Kind int

const (
	Chrome Kind = iota
	Firefox
	Edge
	Safari
)

// Kinds lists every supported browser in a stable order.
var Kinds = []Kind{Chrome, Firefox, Edge, Safari}

func (k Kind) String() string {
	switch k {
	case Chrome:
		return "chrome"
	case Firefox:
		return "firefox"
	case Edge:
		return "edge"
	case Safari:
		return "safari"
	default:
		return fmt.Sprintf("browser(%d)", int(k))
	}
}

// ParseKind resolves a browser identifier string. Unknown identifiers fail
// with ErrUnsupportedBrowser.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "chrome":
		return Chrome, nil
	case "firefox":
		return Firefox, nil
	case "edge":
		return Edge, nil
	case "safari":
		return Safari, nil
	default:
		return 0, fmt.Errorf("%w: %q (supported: chrome, firefox, edge, safari)", ErrUnsupportedBrowser, name)
	}
}
