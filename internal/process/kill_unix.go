//go:build !windows

package process

import "syscall"

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort cleanup; error ignored since the launcher's own cleanup
	// runs afterward regardless.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
