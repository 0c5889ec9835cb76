// Package tty runs a viewer inside a terminal. The terminal screen acts
// as the framebuffer with one pixel per character cell.
package tty

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/oliverbestmann/glview/orion"
)

// Backend drives a single tcell screen.
type Backend struct {
	screen tcell.Screen
	window *Window

	ready    bool
	finiOnce sync.Once
}

// NewBackend creates a backend for the given screen. If screen is nil,
// the terminal attached to the process is used.
func NewBackend(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}

		b.screen = screen
	}

	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}

	b.screen.EnableMouse()
	b.screen.HideCursor()

	b.ready = true

	return nil
}

// CreateWindow returns the terminal as a window. There can only be
// one window per backend.
func (b *Backend) CreateWindow(width, height int, title string) (orion.Window, error) {
	if !b.ready {
		return nil, errors.New("terminal not initialized")
	}

	if b.window != nil {
		return nil, errors.New("terminal window already open")
	}

	columns, rows := b.screen.Size()

	slog.Debug("Open terminal window",
		slog.String("title", title),
		slog.Int("requestedWidth", width),
		slog.Int("requestedHeight", height),
		slog.Int("columns", columns),
		slog.Int("rows", rows),
	)

	b.window = newWindow(b.screen, b.fini)

	return b.window, nil
}

// PollEvents dispatches all pending terminal events without blocking.
func (b *Backend) PollEvents() {
	if b.window == nil || b.window.destroyed {
		return
	}

	for b.screen.HasPendingEvent() {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}

		b.window.dispatch(ev)
	}
}

func (b *Backend) Terminate() {
	if b.ready {
		b.fini()
		b.ready = false
	}
}

// Screen returns the underlying tcell screen, nil before Init.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

func (b *Backend) fini() {
	b.finiOnce.Do(b.screen.Fini)
}
