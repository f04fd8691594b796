// Package engine drives the editor: terminal session, render and input loop
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-pixel/canvas"
	"github.com/lixenwraith/vi-pixel/editor"
	"github.com/lixenwraith/vi-pixel/input"
	"github.com/lixenwraith/vi-pixel/render"
)

// PollInterval bounds how long the loop waits for input before redrawing
const PollInterval = 100 * time.Millisecond

// ErrScreenClosed is returned when the screen stops delivering events
var ErrScreenClosed = errors.New("screen closed")

// Exporter writes the grid somewhere durable
type Exporter interface {
	Export(g *canvas.Grid) error
	Target() string
}

// Cues plays feedback for export outcomes
type Cues interface {
	PlaySaved()
	PlayError()
}

type silentCues struct{}

func (silentCues) PlaySaved() {}
func (silentCues) PlayError() {}

// Editor owns the application state and runs the render/poll/update loop
type Editor struct {
	screen   tcell.Screen
	state    *editor.State
	handler  *input.Handler
	exporter Exporter
	cues     Cues
	clock    Clock
	log      logrus.FieldLogger
	legend   string

	events chan tcell.Event
}

// Option configures an Editor
type Option func(*Editor)

// WithCues sets the export feedback player
func WithCues(c Cues) Option {
	return func(e *Editor) { e.cues = c }
}

// WithClock sets the time source for status expiry
func WithClock(c Clock) Option {
	return func(e *Editor) { e.clock = c }
}

// WithLogger sets the logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Editor) { e.log = l }
}

// NewEditor wires the loop around an initialized screen
func NewEditor(screen tcell.Screen, state *editor.State, handler *input.Handler, exporter Exporter, opts ...Option) *Editor {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Editor{
		screen:   screen,
		state:    state,
		handler:  handler,
		exporter: exporter,
		cues:     silentCues{},
		clock:    SystemClock{},
		log:      discard,
		legend:   handler.Legend(),
		events:   make(chan tcell.Event, 16),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the editor state
func (e *Editor) State() *editor.State {
	return e.state
}

// Run loops render then poll until the quit action, ctx cancellation, or a
// terminal failure. It returns nil on quit and cancellation
func (e *Editor) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go e.pump(done)

	poll := time.NewTimer(PollInterval)
	defer poll.Stop()

	for {
		e.draw()
		poll.Reset(PollInterval)

		select {
		case <-ctx.Done():
			e.log.Info("context cancelled, leaving loop")
			return nil

		case ev, ok := <-e.events:
			if !ok {
				return ErrScreenClosed
			}
			quit, err := e.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				e.log.Info("quit requested")
				return nil
			}

		case <-poll.C:
		}
	}
}

// pump forwards screen events until the screen is finalized or done closes
func (e *Editor) pump(done <-chan struct{}) {
	defer close(e.events)
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case e.events <- ev:
		case <-done:
			return
		}
	}
}

func (e *Editor) draw() {
	w, h := e.screen.Size()
	render.Present(e.screen, render.ComposeLegend(e.state, w, h, e.clock.Now(), e.legend))
}

func (e *Editor) handleEvent(ev tcell.Event) (quit bool, err error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := e.handler.HandleKey(e.state, ev)
		if action != input.ActionNone {
			e.log.WithField("action", action.String()).Debug("key action")
		}
		switch action {
		case input.ActionQuit:
			return true, nil
		case input.ActionExport:
			e.export()
		}

	case *tcell.EventResize:
		e.screen.Sync()

	case *tcell.EventError:
		return true, fmt.Errorf("terminal: %w", ev)
	}
	return false, nil
}

// export writes the grid; a failure is reported in the status panel and the
// loop keeps running
func (e *Editor) export() {
	target := e.exporter.Target()
	log := e.log.WithField("path", target)

	if err := e.exporter.Export(e.state.Grid); err != nil {
		log.WithError(err).Error("export failed")
		e.state.SetStatus(failureText(err, target), editor.StatusError, e.clock.Now())
		e.cues.PlayError()
		return
	}

	log.Info("export complete")
	e.state.SetStatus("Saved "+target, editor.StatusSuccess, e.clock.Now())
	e.cues.PlaySaved()
}

// failureText leads with the innermost cause so a clipped message still
// says what went wrong
func failureText(err error, target string) string {
	cause := err
	for next := errors.Unwrap(cause); next != nil; next = errors.Unwrap(cause) {
		cause = next
	}
	return fmt.Sprintf("Export failed: %v (%s)", cause, target)
}
