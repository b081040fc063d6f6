//go:build !windows

package app

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/kk-code-lab/manlink/internal/manref"
)

// ExecMan replaces the current process with man rendering ref through
// this binary. Used on first launch so the shell sees a single foreground
// job instead of a pager wrapping a pager. It only returns on error.
func ExecMan(manCommand string, ref manref.Reference) error {
	self, err := os.Executable()
	if err != nil {
		return err
	}
	manPath, err := exec.LookPath(manCommand)
	if err != nil {
		return err
	}

	argv := append([]string{manCommand}, manJumpArgs(self, ref)...)
	return unix.Exec(manPath, argv, os.Environ())
}
