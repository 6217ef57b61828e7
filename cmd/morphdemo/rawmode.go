package main

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// rawMode puts fd into cbreak mode (no line buffering, no echo, signals
// still enabled) and returns a function that restores the terminal's
// original settings.
func rawMode(fd int) (restore func() error, err error) {
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("morphdemo: get termios: %w", err)
	}

	raw := *orig
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Iflag &^= unix.IXON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, fmt.Errorf("morphdemo: set termios: %w", err)
	}

	return func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, orig)
	}, nil
}
