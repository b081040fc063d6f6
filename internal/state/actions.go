package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SCROLL ACTIONS =====

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}

// ===== MOUSE ACTIONS =====

type ToggleMouseModeAction struct{}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchMoveCursorAction struct {
	Direction string // "left", "right", "home", "end"
}
type SearchCancelAction struct{}
type SearchCommitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
