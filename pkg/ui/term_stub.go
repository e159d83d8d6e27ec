//go:build !linux

package ui

// Terminal is inert on platforms without termios support: the monitor still
// runs, but only batch-style without single-key interaction.
type Terminal struct{}

// Setup is a no-op on unsupported platforms.
func Setup() *Terminal { return &Terminal{} }

// Interactive always reports false.
func (t *Terminal) Interactive() bool { return false }

// Poll never reports input.
func (t *Terminal) Poll() (byte, bool) { return 0, false }

// Restore is a no-op.
func (t *Terminal) Restore() {}
