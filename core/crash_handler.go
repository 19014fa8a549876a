package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is invoked with the recovered value when a goroutine
// started via Go panics. Replaceable so embedders can clean up their
// own surfaces before exit
var crashHandler atomic.Pointer[func(r any)]

// SetCrashHandler replaces the default crash handler
func SetCrashHandler(fn func(r any)) {
	crashHandler.Store(&fn)
}

// HandleCrash prints the panic value and stack trace, then exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r)
		return
	}

	fmt.Fprintf(os.Stderr, "crash detected: %v\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword for long-lived loops
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
