package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/manlink/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.PagerState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.PagerState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false
// when the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ih.state != nil && ih.state.SearchActive {
		return ih.processSearchKeyEvent(ev)
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.ScrollUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.ScrollDownAction{}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
		return true

	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
		return true

	case tcell.KeyHome:
		ih.actionChan <- statepkg.JumpTopAction{}
		return true

	case tcell.KeyEnd:
		ih.actionChan <- statepkg.JumpBottomAction{}
		return true

	case tcell.KeyRune:
		return ih.processRune(ev)

	default:
		return true
	}
}

func (ih *InputHandler) processRune(ev *tcell.EventKey) bool {
	r := ev.Rune()

	if ev.Modifiers()&tcell.ModAlt != 0 {
		if r == 'i' {
			ih.actionChan <- statepkg.ToggleMouseModeAction{}
		}
		return true
	}

	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'j':
		ih.actionChan <- statepkg.ScrollDownAction{}
	case 'k':
		ih.actionChan <- statepkg.ScrollUpAction{}
	case 'g':
		ih.actionChan <- statepkg.JumpTopAction{}
	case 'G':
		ih.actionChan <- statepkg.JumpBottomAction{}
	case ' ':
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case 'b':
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case '/':
		ih.actionChan <- statepkg.SearchStartAction{}
	}
	return true
}

// processSearchKeyEvent handles keys while the search prompt is open.
// Everything except a handful of editing keys is captured by the prompt
// so stray pager keybindings cannot fire mid-typing.
func (ih *InputHandler) processSearchKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyEscape:
		ih.actionChan <- statepkg.SearchCancelAction{}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.SearchCommitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.actionChan <- statepkg.SearchBackspaceAction{}
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.SearchMoveCursorAction{Direction: "left"}
	case tcell.KeyRight:
		ih.actionChan <- statepkg.SearchMoveCursorAction{Direction: "right"}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.SearchMoveCursorAction{Direction: "home"}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.SearchMoveCursorAction{Direction: "end"}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.SearchCharAction{Char: ev.Rune()}
	}
	return true
}
