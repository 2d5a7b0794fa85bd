//go:build windows

package launch

import "syscall"

// detachAttr hides the console window and detaches the child from the
// launcher's process group.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
