//go:build linux

package ui

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal holds restore state for an interactive session.
type Terminal struct {
	inFD        int
	interactive bool
	restore     []func()
}

// Setup switches to the alternate screen buffer, hides the cursor, and puts
// stdin into a non-echoing mode where reads return immediately when no byte
// is pending. With a non-terminal stdout it does nothing and Poll never
// reports input.
func Setup() *Terminal {
	t := &Terminal{inFD: int(os.Stdin.Fd())}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return t
	}

	fmt.Print("\033[?1049h") // switch to alternate buffer
	fmt.Print("\033[?25l")   // hide cursor
	t.restore = append(t.restore, func() {
		fmt.Print("\033[?25h")   // show cursor
		fmt.Print("\033[?1049l") // restore main buffer
	})

	if term.IsTerminal(t.inFD) {
		if undo, err := enableKeyInput(t.inFD); err == nil {
			t.restore = append(t.restore, undo)
			t.interactive = true
		}
	}
	return t
}

// Interactive reports whether single-key polling is available.
func (t *Terminal) Interactive() bool { return t.interactive }

// Poll reads one pending byte from stdin without blocking. Returns false
// when no input is waiting.
func (t *Terminal) Poll() (byte, bool) {
	if !t.interactive {
		return 0, false
	}
	var buf [1]byte
	n, err := unix.Read(t.inFD, buf[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

// Restore undoes terminal changes in reverse order.
func (t *Terminal) Restore() {
	for i := len(t.restore) - 1; i >= 0; i-- {
		t.restore[i]()
	}
	t.restore = nil
}

// enableKeyInput turns off echo and line buffering and sets VMIN=0/VTIME=0
// so reads never block. Signal generation stays on, so Ctrl+C still cancels
// through the signal context.
func enableKeyInput(fd int) (func(), error) {
	state, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	updated := *state
	updated.Lflag &^= unix.ECHO | unix.ICANON
	updated.Cc[unix.VMIN] = 0
	updated.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &updated); err != nil {
		return nil, err
	}

	return func() {
		_ = unix.IoctlSetTermios(fd, unix.TCSETS, state)
	}, nil
}
