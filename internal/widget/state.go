package widget

import (
	"errors"
	"fmt"
)

// State is the lifecycle position of one widget session.
type State int

const (
	Unloaded State = iota
	ScriptLoading
	ScriptReady
	Initialized
	Rendered
	Destroyed
	Errored
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case ScriptLoading:
		return "script_loading"
	case ScriptReady:
		return "script_ready"
	case Initialized:
		return "initialized"
	case Rendered:
		return "rendered"
	case Destroyed:
		return "destroyed"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var transitions = map[State][]State{
	Unloaded:      {ScriptLoading, Destroyed},
	ScriptLoading: {ScriptReady, Errored, Destroyed},
	ScriptReady:   {Initialized, Errored, Destroyed},
	Initialized:   {Rendered, Errored, Destroyed},
	Rendered:      {Errored, Destroyed},
	Errored:       {Destroyed},
}

func (s State) canMoveTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type EventKind int

const (
	EventRendered EventKind = iota + 1
	EventFailed
	EventDestroyed
)

func (k EventKind) String() string {
	switch k {
	case EventRendered:
		return "rendered"
	case EventFailed:
		return "failed"
	case EventDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Event is what the controller reports about a session. Err is set for EventFailed.
type Event struct {
	Kind      EventKind
	SessionID string
	Err       error
}

type EventHandler func(Event)

// Stage names where a widget failure happened.
type Stage string

const (
	StageScriptLoad Stage = "script_load"
	StageInit       Stage = "init"
	StageRender     Stage = "render"
	StageRuntime    Stage = "runtime"
)

var (
	ErrEmptyToken        = errors.New("confirmation token is empty")
	ErrContainerNotFound = errors.New("widget container not found")
	ErrSessionClosed     = errors.New("widget session was destroyed")
	ErrNoFactory         = errors.New("widget script loaded without a factory")
)

// WidgetError is a script load or widget failure, delivered through the error callback.
type WidgetError struct {
	Stage     Stage
	SessionID string
	Err       error
}

func (e *WidgetError) Error() string {
	return fmt.Sprintf("widget %s failed: %v", e.Stage, e.Err)
}

func (e *WidgetError) Unwrap() error { return e.Err }
