package browser

// This file contains installed-browser detection based on well-known
// binary locations per operating system.

import (
	"os"
	"runtime"
)

var binaryPaths = map[Kind]map[string][]string{
	Chrome: {
		"windows": {
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		},
		"darwin": {"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"},
		"linux":  {"/usr/bin/google-chrome", "/usr/bin/chromium-browser", "/usr/bin/chromium"},
	},
	Firefox: {
		"windows": {
			`C:\Program Files\Mozilla Firefox\firefox.exe`,
			`C:\Program Files (x86)\Mozilla Firefox\firefox.exe`,
		},
		"darwin": {"/Applications/Firefox.app/Contents/MacOS/firefox"},
		"linux":  {"/usr/bin/firefox"},
	},
	Edge: {
		"windows": {
			`C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
			`C:\Program Files\Microsoft\Edge\Application\msedge.exe`,
		},
		"darwin": {"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge"},
		"linux":  {"/usr/bin/microsoft-edge"},
	},
}

// binaryPath returns the installed binary location for k on this system.
func binaryPath(k Kind) (string, bool) {
	if k == Safari {
		// Safari ships with macOS and has no meaningful binary probe path.
		if runtime.GOOS == "darwin" {
			return "/Applications/Safari.app/Contents/MacOS/Safari", true
		}
		return "", false
	}
	for _, path := range binaryPaths[k][runtime.GOOS] {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Detect reports which supported browsers are installed on this system.
func Detect() map[Kind]bool {
	available := make(map[Kind]bool, len(Kinds))
	for _, k := range Kinds {
		_, ok := binaryPath(k)
		available[k] = ok
	}
	return available
}
