// Package view models the transient state of a data-backed view as an
// explicit machine: Idle → Loading → Success or Error. Keeping the state in
// one place makes contradictory combinations (loading with an error set)
// unrepresentable, and tokens let a view discard results that arrive after
// it moved on.
package view

// State enumerates view lifecycle states.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Token identifies one load attempt. Only the token handed out by the most
// recent Begin can complete the view; anything older is stale and ignored.
type Token uint64

// Model holds the state of a single view. It is not safe for concurrent use;
// the REPL drives it from one goroutine.
type Model[T any] struct {
	state State
	data  T
	msg   string
	gen   Token
}

// New returns a model in the Idle state.
func New[T any]() *Model[T] {
	return &Model[T]{}
}

// Begin transitions to Loading and returns the token required to finish this
// attempt. Starting a new attempt invalidates any outstanding token.
func (m *Model[T]) Begin() Token {
	m.gen++
	m.state = StateLoading
	m.msg = ""
	return m.gen
}

// Succeed completes the attempt identified by tok with data. Stale tokens
// are ignored and reported as false.
func (m *Model[T]) Succeed(tok Token, data T) bool {
	if tok != m.gen || m.state != StateLoading {
		return false
	}
	m.state = StateSuccess
	m.data = data
	return true
}

// Fail completes the attempt identified by tok with a user-facing message.
// Stale tokens are ignored and reported as false.
func (m *Model[T]) Fail(tok Token, msg string) bool {
	if tok != m.gen || m.state != StateLoading {
		return false
	}
	m.state = StateError
	m.msg = msg
	return true
}

// Cancel abandons a pending attempt, returning to Idle. Results belonging to
// the canceled attempt will be discarded when they arrive. A model that is
// not loading is left as is.
func (m *Model[T]) Cancel() {
	if m.state != StateLoading {
		return
	}
	m.gen++
	m.state = StateIdle
}

// State returns the current lifecycle state.
func (m *Model[T]) State() State { return m.state }

// Data returns the last successful payload. Meaningful only in StateSuccess.
func (m *Model[T]) Data() T { return m.data }

// Message returns the user-facing error message. Meaningful only in StateError.
func (m *Model[T]) Message() string { return m.msg }
