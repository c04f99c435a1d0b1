//go:build linux

package main

import (
	"github.com/pkg/errors"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// setRawIO switches the terminal on stdin to raw input, and returns the
// function restoring it. Output processing is off, so '\n' is not
// expanded by the tty.
func setRawIO() (restore func(), err error) {
	var saved unix.Termios
	err = termios.Tcgetattr(0, &saved)
	if err != nil {
		err = errors.Wrap(err, f("Tcgetattr failed"))
		return
	}

	raw := saved
	raw.Iflag &^= unix.IGNBRK | unix.ISTRIP | unix.IXON | unix.IXOFF
	raw.Iflag |= unix.BRKINT | unix.IGNPAR
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ICANON | unix.IEXTEN | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(0, termios.TCSANOW, &raw)
	if err != nil {
		_ = termios.Tcsetattr(0, termios.TCSANOW, &saved)
		err = errors.Wrap(err, f("Tcsetattr failed"))
		return
	}

	restore = func() {
		_ = termios.Tcsetattr(0, termios.TCSANOW, &saved)
	}

	return
}
