//go:build !windows

package launch

import "syscall"

// detachAttr puts the child in its own session so it survives the
// launcher exiting and never receives the terminal's signals.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}
