//go:build windows

package app

import (
	"errors"

	"github.com/kk-code-lab/manlink/internal/manref"
)

// ExecMan requires execve semantics, which Windows does not provide.
func ExecMan(manCommand string, ref manref.Reference) error {
	return errors.New("re-exec through man is not supported on windows")
}
