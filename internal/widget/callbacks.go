package widget

// Callbacks is the UI-facing surface: success and error callbacks instead of events.
type Callbacks struct {
	OnSuccess func(sessionID string)
	OnError   func(err error)
}

// Handler converts controller events into callback calls. Destroy events are not
// reported to the UI.
func (cb Callbacks) Handler() EventHandler {
	return func(e Event) {
		switch e.Kind {
		case EventRendered:
			if cb.OnSuccess != nil {
				cb.OnSuccess(e.SessionID)
			}
		case EventFailed:
			if cb.OnError != nil {
				cb.OnError(e.Err)
			}
		}
	}
}
