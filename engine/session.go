package engine

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdin is not a TTY
var ErrNotTerminal = errors.New("stdin is not a terminal")

// Session guards the process-wide terminal surface. Open acquires raw mode
// and the alternate screen; Close releases both and is safe to call repeatedly
type Session struct {
	Screen tcell.Screen
	once   sync.Once
}

// Open creates and initializes the terminal screen
func Open() (*Session, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return OpenScreen(screen)
}

// OpenScreen initializes an existing screen
func OpenScreen(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &Session{Screen: screen}, nil
}

// Close restores the terminal
func (s *Session) Close() {
	s.once.Do(s.Screen.Fini)
}
