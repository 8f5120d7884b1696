package widget

import (
	"context"
	"errors"
	"sync"
)

type fakeWidget struct {
	mu         sync.Mutex
	opts       Options
	renderErr  error
	renderGate chan struct{}
	panicOn    string
	destroyErr error
	destroyed  int
	factory    *fakeFactory
}

func (w *fakeWidget) Render(ctx context.Context, containerID string) error {
	if w.panicOn == "render" {
		panic("render exploded")
	}
	if w.renderGate != nil {
		<-w.renderGate
	}
	w.record("render " + containerID)
	return w.renderErr
}

func (w *fakeWidget) Destroy() error {
	w.mu.Lock()
	w.destroyed++
	w.mu.Unlock()
	w.record("destroy " + w.opts.ConfirmationToken)
	if w.panicOn == "destroy" {
		panic("destroy exploded")
	}
	return w.destroyErr
}

func (w *fakeWidget) destroyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

func (w *fakeWidget) record(s string) {
	if w.factory != nil {
		w.factory.record(s)
	}
}

type fakeFactory struct {
	mu      sync.Mutex
	created []*fakeWidget
	newErr  error
	panics  bool
	tmpl    func() *fakeWidget
	log     []string
}

func (f *fakeFactory) New(opts Options) (Widget, error) {
	if f.panics {
		panic("constructor exploded")
	}
	if f.newErr != nil {
		return nil, f.newErr
	}
	w := &fakeWidget{}
	if f.tmpl != nil {
		w = f.tmpl()
	}
	w.opts = opts
	w.factory = f
	f.record("new " + opts.ConfirmationToken)
	f.mu.Lock()
	f.created = append(f.created, w)
	f.mu.Unlock()
	return w, nil
}

func (f *fakeFactory) record(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.log = append(f.log, s)
}

func (f *fakeFactory) history() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.log...)
}

func (f *fakeFactory) widget(i int) *fakeWidget {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created[i]
}

func (f *fakeFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type staticLoader struct {
	factory Factory
	err     error
}

func (l staticLoader) EnsureLoaded(context.Context) (Factory, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.factory, nil
}

type fakeDocument struct {
	mu       sync.Mutex
	missing  bool
	clears   int
	clearErr error
}

func (d *fakeDocument) ContainerExists(string) bool { return !d.missing }

func (d *fakeDocument) ClearContainer(string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clears++
	return d.clearErr
}

type eventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *eventRecorder) handle(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) kinds() []EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

var errBoom = errors.New("boom")
