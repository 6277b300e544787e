//go:build windows

// Package stderr is a no-op on Windows, whose audio stack does not write
// to the console.
package stderr

import (
	"os"

	"go.uber.org/zap"
)

// Capture keeps the Unix API so callers build unchanged.
type Capture struct{}

// New returns a Capture that never redirects anything.
func New(*zap.Logger) *Capture { return &Capture{} }

// Start does nothing.
func (c *Capture) Start() error { return nil }

// WriteOriginal writes msg to the process stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop does nothing.
func (c *Capture) Stop() {}
