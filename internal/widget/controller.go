package widget

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Document is the slice of the host page the controller touches.
type Document interface {
	ContainerExists(id string) bool
	ClearContainer(id string) error
}

// Params are what the payment step hands to the controller.
type Params struct {
	ConfirmationToken string
	ReturnURL         string
	// Customization overrides DefaultCustomization when non-nil.
	Customization *Customization
}

// Controller owns the single widget session of one container.
type Controller struct {
	containerID string
	loader      ScriptLoader
	doc         Document
	handler     EventHandler
	logger      zerolog.Logger

	mu      sync.Mutex
	current *Session
}

type ControllerOption func(*Controller)

func WithEventHandler(h EventHandler) ControllerOption {
	return func(c *Controller) { c.handler = h }
}

func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) { c.logger = logger }
}

func NewController(containerID string, loader ScriptLoader, doc Document, opts ...ControllerOption) *Controller {
	c := &Controller{
		containerID: containerID,
		loader:      loader,
		doc:         doc,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("component", "widget").Str("container", containerID).Logger()
	return c
}

// Current returns the active session, if any.
func (c *Controller) Current() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Open replaces any existing session with a new one and starts rendering it.
//
// The returned error is the same *WidgetError delivered as an EventFailed. Render runs
// in the background; Session.Done is closed once it settles.
func (c *Controller) Open(ctx context.Context, p Params) (*Session, error) {
	s := newSession(c.containerID)
	log := c.logger.With().Str("session_id", s.id).Logger()

	c.mu.Lock()
	prev := c.current
	c.current = s
	c.mu.Unlock()

	if prev != nil {
		log.Debug().Str("previous_session_id", prev.id).Msg("destroying previous session")
		c.destroy(prev)
	}

	s.moveTo(ScriptLoading)
	factory, err := c.loader.EnsureLoaded(ctx)
	if err != nil {
		return s, c.fail(s, StageScriptLoad, err)
	}
	if !s.moveTo(ScriptReady) {
		return s, ErrSessionClosed
	}

	if strings.TrimSpace(p.ConfirmationToken) == "" {
		return s, c.fail(s, StageInit, ErrEmptyToken)
	}
	if !c.doc.ContainerExists(c.containerID) {
		return s, c.fail(s, StageInit, ErrContainerNotFound)
	}
	if err := c.doc.ClearContainer(c.containerID); err != nil {
		log.Warn().Err(err).Msg("clear container failed")
	}

	custom := DefaultCustomization()
	if p.Customization != nil {
		custom = *p.Customization
	}
	w, err := safeNew(factory, Options{
		ConfirmationToken: p.ConfirmationToken,
		ReturnURL:         p.ReturnURL,
		ErrorCallback:     func(err error) { _ = c.fail(s, StageRuntime, err) },
		Customization:     custom,
	})
	if err != nil {
		return s, c.fail(s, StageInit, err)
	}
	if !s.attach(w) {
		// Superseded while constructing.
		c.destroyWidget(log, w)
		return s, ErrSessionClosed
	}

	go c.render(context.WithoutCancel(ctx), s, w)
	return s, nil
}

// Close destroys the active session. Safe to call repeatedly.
func (c *Controller) Close() {
	c.mu.Lock()
	s := c.current
	c.current = nil
	c.mu.Unlock()

	if s != nil {
		c.destroy(s)
	}
}

func (c *Controller) render(ctx context.Context, s *Session, w Widget) {
	log := c.logger.With().Str("session_id", s.id).Logger()
	err := safeRender(ctx, w, c.containerID)
	if err != nil {
		_ = c.fail(s, StageRender, err)
		return
	}
	if !s.moveTo(Rendered) {
		log.Debug().Str("state", s.State().String()).Msg("render resolved after session ended")
		return
	}
	log.Info().Msg("widget rendered")
	c.emit(Event{Kind: EventRendered, SessionID: s.id})
	s.settle()
}

// fail moves s to Errored and reports it. A session that already ended only logs.
func (c *Controller) fail(s *Session, stage Stage, err error) error {
	werr := &WidgetError{Stage: stage, SessionID: s.id, Err: err}
	if !s.setErr(werr) {
		c.logger.Debug().Err(err).Str("session_id", s.id).Str("stage", string(stage)).Msg("widget error after session ended")
		return werr
	}
	c.logger.Warn().Err(err).Str("session_id", s.id).Str("stage", string(stage)).Msg("widget failed")
	c.emit(Event{Kind: EventFailed, SessionID: s.id, Err: werr})
	s.settle()
	return werr
}

func (c *Controller) destroy(s *Session) {
	w, ok := s.markDestroyed()
	if !ok {
		return
	}
	log := c.logger.With().Str("session_id", s.id).Logger()
	if w != nil {
		c.destroyWidget(log, w)
	}
	if err := c.doc.ClearContainer(c.containerID); err != nil {
		log.Warn().Err(err).Msg("clear container failed")
	}
	c.emit(Event{Kind: EventDestroyed, SessionID: s.id})
	s.settle()
}

func (c *Controller) destroyWidget(log zerolog.Logger, w Widget) {
	if err := safeDestroy(w); err != nil {
		log.Warn().Err(err).Msg("widget teardown failed; continuing")
	}
}

func (c *Controller) emit(e Event) {
	if c.handler == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Str("event", e.Kind.String()).Msg("event handler panicked")
		}
	}()
	c.handler(e)
}

// Session is one widget instance's lifecycle.
type Session struct {
	id          string
	containerID string

	mu     sync.Mutex
	state  State
	widget Widget
	err    error
	done   chan struct{}
	once   sync.Once
}

func newSession(containerID string) *Session {
	return &Session{id: uuid.NewString(), containerID: containerID, state: Unloaded, done: make(chan struct{})}
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed once the session is rendered, errored or destroyed and the matching event has been delivered.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err returns the failure that moved the session to Errored, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session) moveTo(next State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveToLocked(next)
}

func (s *Session) moveToLocked(next State) bool {
	if !s.state.canMoveTo(next) {
		return false
	}
	s.state = next
	return true
}

// settle closes Done. Called after the settling event has been emitted.
func (s *Session) settle() {
	s.once.Do(func() { close(s.done) })
}

func (s *Session) attach(w Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.moveToLocked(Initialized) {
		return false
	}
	s.widget = w
	return true
}

func (s *Session) setErr(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.moveToLocked(Errored) {
		return false
	}
	s.err = err
	return true
}

// markDestroyed returns the widget to tear down; ok is false if already destroyed.
func (s *Session) markDestroyed() (Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.moveToLocked(Destroyed) {
		return nil, false
	}
	w := s.widget
	s.widget = nil
	return w, true
}

func safeNew(f Factory, opts Options) (w Widget, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, err = nil, fmt.Errorf("widget constructor panicked: %v", r)
		}
	}()
	w, err = f.New(opts)
	if err == nil && w == nil {
		err = fmt.Errorf("widget constructor returned no instance")
	}
	return w, err
}

func safeRender(ctx context.Context, w Widget, containerID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("widget render panicked: %v", r)
		}
	}()
	return w.Render(ctx, containerID)
}

func safeDestroy(w Widget) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("widget destroy panicked: %v", r)
		}
	}()
	return w.Destroy()
}
