package widget

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const ScriptURL = "https://yookassa.ru/checkout-widget/v1/checkout-widget.js"

// ScriptLoader hands out the widget factory once the third-party script is available.
type ScriptLoader interface {
	EnsureLoaded(ctx context.Context) (Factory, error)
}

// Factory constructs widget instances; it stands in for the script's global constructor.
type Factory interface {
	New(opts Options) (Widget, error)
}

type Widget interface {
	Render(ctx context.Context, containerID string) error
	Destroy() error
}

// InjectFunc adds the script to the host page and resolves when it has loaded.
type InjectFunc func(ctx context.Context, src string) (Factory, error)

// OnceLoader injects the script at most once per process.
//
// Callers arriving while a load is in flight wait for that load. A failed load leaves
// the loader unloaded; the next EnsureLoaded starts a new attempt.
type OnceLoader struct {
	src     string
	inject  InjectFunc
	logger  zerolog.Logger
	group   singleflight.Group
	loaded  atomic.Bool
	factory Factory // written once, before loaded flips
}

var _ ScriptLoader = (*OnceLoader)(nil)

type LoaderOption func(*OnceLoader)

func WithScriptURL(src string) LoaderOption {
	return func(l *OnceLoader) {
		if src != "" {
			l.src = src
		}
	}
}

func WithLoaderLogger(logger zerolog.Logger) LoaderOption {
	return func(l *OnceLoader) { l.logger = logger }
}

func NewOnceLoader(inject InjectFunc, opts ...LoaderOption) *OnceLoader {
	l := &OnceLoader{src: ScriptURL, inject: inject, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Loaded flips false to true at most once and never reverts.
func (l *OnceLoader) Loaded() bool { return l.loaded.Load() }

func (l *OnceLoader) EnsureLoaded(ctx context.Context) (Factory, error) {
	if l.loaded.Load() {
		return l.factory, nil
	}

	ch := l.group.DoChan("script", func() (any, error) {
		if l.loaded.Load() {
			return l.factory, nil
		}
		l.logger.Debug().Str("src", l.src).Msg("injecting widget script")
		// Waiters share this load, so one caller's cancellation must not abort it.
		f, err := l.safeInject(context.WithoutCancel(ctx))
		if err != nil {
			l.logger.Warn().Err(err).Str("src", l.src).Msg("widget script failed to load")
			return nil, err
		}
		if f == nil {
			return nil, ErrNoFactory
		}
		l.factory = f
		l.loaded.Store(true)
		l.logger.Debug().Msg("widget script ready")
		return f, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Factory), nil
	}
}

func (l *OnceLoader) safeInject(ctx context.Context) (f Factory, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script injection panicked: %v", r)
		}
	}()
	return l.inject(ctx, l.src)
}
