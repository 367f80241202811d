package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	exitFunc    = os.Exit
)

// RegisterScreen records the screen restored on crash, nil clears it
func RegisterScreen(s tcell.Screen) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	// Restore terminal to sane state before writing to stderr
	if s != nil {
		s.Fini()
	}

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(os.Stderr, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
	os.Stderr.Sync()

	exitFunc(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
