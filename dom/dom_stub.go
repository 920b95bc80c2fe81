//go:build !js || !wasm

// Package dom binds the visitor counter to the browser document. Outside
// js/wasm builds the bindings are inert so dependent packages still compile
// and test.
package dom

type Element struct {
	ID string
}

// SetText is a no-op outside the browser.
func (e Element) SetText(text string) {}

// Endpoint always returns "" outside the browser.
func (e Element) Endpoint() string {
	return ""
}

type Console struct{}

// Error is a no-op outside the browser.
func (Console) Error(msg string, args ...interface{}) error {
	return nil
}

// OnReady calls fn immediately outside the browser.
func OnReady(fn func()) {
	fn()
}
