//go:build windows

package actions

import (
	"os/exec"
	"strings"
	"syscall"
)

// newCommand builds the command. Explorer selections bypass argument
// escaping, which would quote "/select,<path>" as a whole.
func newCommand(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	if name == "explorer" && len(args) == 1 && strings.HasPrefix(args[0], selectPrefix) {
		cmd.SysProcAttr = &syscall.SysProcAttr{
			CmdLine: selectCmdLine(strings.TrimPrefix(args[0], selectPrefix)),
		}
	}
	return cmd
}
