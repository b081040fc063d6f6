package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/manlink/internal/config"
	"github.com/kk-code-lab/manlink/internal/manref"
	statepkg "github.com/kk-code-lab/manlink/internal/state"
	"github.com/kk-code-lab/manlink/internal/textutil"
	inputui "github.com/kk-code-lab/manlink/internal/ui/input"
	renderui "github.com/kk-code-lab/manlink/internal/ui/render"
)

// Application represents the running pager.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.PagerState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	input    *inputui.InputHandler
	locator  *textutil.WordLocator
	actionCh chan statepkg.Action
	cfg      config.Config

	shouldQuit  bool
	lastButtons tcell.ButtonMask

	// jumpFn is called with the reference under a click. It is a field so
	// tests can observe jumps without spawning man.
	jumpFn func(manref.Reference)
}

// NewApplication initializes the terminal screen and wires the pager
// around doc.
func NewApplication(doc *statepkg.Document, cfg config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return newApplicationWithScreen(screen, doc, cfg), nil
}

func newApplicationWithScreen(screen tcell.Screen, doc *statepkg.Document, cfg config.Config) *Application {
	state := statepkg.NewPagerState(doc)
	state.Mouse = initialMouseMode(cfg.MouseMode)

	actionCh := make(chan statepkg.Action, 10)
	reducer := statepkg.NewStateReducer()
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    inputHandler,
		locator:  textutil.NewWordLocator(),
		actionCh: actionCh,
		cfg:      cfg,
	}
	app.jumpFn = app.jumpToReference

	w, h := screen.Size()
	reducer.Reduce(state, statepkg.ResizeAction{Width: w, Height: h})
	app.applyMouseMode()
	return app
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}

// applyMouseMode captures or releases the mouse to match the current
// mode. While released, the terminal handles selection and copying.
func (app *Application) applyMouseMode() {
	if app.state.Mouse == statepkg.MouseLinkClicking {
		app.screen.EnableMouse()
	} else {
		app.screen.DisableMouse()
	}
}

func initialMouseMode(mode string) statepkg.MouseMode {
	if mode == "select" {
		return statepkg.MouseTextSelection
	}
	return statepkg.MouseLinkClicking
}
