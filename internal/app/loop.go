package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/manlink/internal/manref"
	statepkg "github.com/kk-code-lab/manlink/internal/state"
)

// Run drives the event loop until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		debugf("resize to %dx%d", w, h)
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		return app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps wheel events to scrolling and primary-button releases
// to link jumps.
func (app *Application) handleMouse(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()

	// The search prompt captures all input except Enter/Escape, mouse
	// included. Pending button state is dropped too, so a press made
	// while composing cannot fire as a release after the prompt closes.
	if app.state.SearchActive {
		app.lastButtons = 0
		return false
	}

	if buttons&tcell.WheelUp != 0 {
		app.actionCh <- statepkg.ScrollUpAction{}
		return true
	}
	if buttons&tcell.WheelDown != 0 {
		app.actionCh <- statepkg.ScrollDownAction{}
		return true
	}

	// tcell reports no distinct release event; a click completes when
	// Button1 drops out of the button mask.
	released := app.lastButtons&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
	app.lastButtons = buttons
	if !released {
		return false
	}

	x, y := ev.Position()
	app.handleContentClick(x, y)
	return true
}

// handleContentClick resolves the word under a click and, when it parses
// as a cross-reference, jumps to it. Clicks on the frame, the status row,
// plain words, and whitespace are ignored.
func (app *Application) handleContentClick(x, y int) {
	if y < 1 || y > app.state.ScreenHeight-3 {
		return
	}

	word, ok := app.locator.WordAt(app.state.Doc.Lines, app.state.ScrollOffset, y, x)
	if !ok {
		return
	}

	ref, err := manref.Parse(word)
	if err != nil {
		debugf("click on %q: %v", word, err)
		return
	}
	app.jumpFn(ref)
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.ToggleMouseModeAction:
		app.reducer.Reduce(app.state, action)
		app.applyMouseMode()
		return true
	}

	app.reducer.Reduce(app.state, action)
	return true
}
