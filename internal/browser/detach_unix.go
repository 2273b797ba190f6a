//go:build !windows

package browser

import "syscall"

// detachedAttr places the child in a new process group so terminal signals
// sent to the CLI do not reach it.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
