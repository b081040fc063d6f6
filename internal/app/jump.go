package app

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kk-code-lab/manlink/internal/manref"
)

// subsequentRunFlag marks child invocations of this binary so they skip
// the startup re-exec and run the pager directly.
const subsequentRunFlag = "--subsequent-run"

// jumpToReference runs man for ref with this binary as its pager. The
// child pager takes over the terminal until the user quits it, then this
// instance resumes where it left off.
func (app *Application) jumpToReference(ref manref.Reference) {
	debugf("jumping to %s", ref)
	if err := app.runLinkJump(ref); err != nil {
		debugf("jump to %s: %v", ref, err)
		app.state.LastJump = fmt.Sprintf("jump to %s failed", ref)
	} else {
		app.state.LastJump = ""
	}
	app.applyMouseMode()
}

func (app *Application) runLinkJump(ref manref.Reference) (err error) {
	self, err := os.Executable()
	if err != nil {
		return err
	}

	cmd := exec.Command(app.cfg.ManCommand, manJumpArgs(self, ref)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := app.screen.Suspend(); err != nil {
		return err
	}
	defer func() {
		if resumeErr := app.screen.Resume(); resumeErr != nil && err == nil {
			err = resumeErr
		}
		app.screen.Sync()
	}()

	return cmd.Run()
}

// manJumpArgs builds man's argument list for a link jump: this binary as
// the pager, then the section before the name so man resolves the exact
// page.
func manJumpArgs(self string, ref manref.Reference) []string {
	return append([]string{"-P", self + " " + subsequentRunFlag}, ref.Args()...)
}
