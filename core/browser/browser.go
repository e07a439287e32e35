// Package browser opens URLs in the operator's default web browser.
package browser

import (
	"io"

	pkgbrowser "github.com/pkg/browser"
)

// Opener opens a URL for the user.
type Opener interface {
	Open(url string) error
}

// System opens URLs with the platform's default browser.
type System struct{}

// NewSystem returns an Opener backed by the platform launcher
// (xdg-open, open, or rundll32). Launcher output is discarded.
func NewSystem() System {
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
	return System{}
}

// Open starts the default browser on url.
func (System) Open(url string) error {
	return pkgbrowser.OpenURL(url)
}
