package wm

import (
	"fmt"
	"os/exec"
	"syscall"
)

// ShellLauncher runs commands with "/bin/sh -lc" in their own session. It
// does not wait for them; a goroutine reaps each child.
type ShellLauncher struct {
	// Shell defaults to /bin/sh.
	Shell string
}

func (l ShellLauncher) Launch(cmd string) error {
	if cmd == "" {
		return nil
	}
	shell := l.Shell
	if shell == "" {
		shell = "/bin/sh"
	}
	c := exec.Command(shell, "-lc", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := c.Start(); err != nil {
		return fmt.Errorf("start %q: %w", cmd, err)
	}
	// Ignore any error from the program itself.
	go c.Wait()
	return nil
}
