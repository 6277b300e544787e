//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, oto) write
// straight to file descriptor 2, so it lands in the log instead of on top
// of the TUI.
package stderr

import (
	"os"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

// Capture redirects fd 2 into a logger until Stop is called.
type Capture struct {
	log *zap.Logger

	mu        sync.Mutex
	orig      int
	pipeRead  *os.File
	pipeWrite *os.File
	done      chan struct{}
	started   bool
}

// New returns a capture that forwards lines to log at warn level.
func New(log *zap.Logger) *Capture {
	if log == nil {
		log = zap.NewNop()
	}
	return &Capture{log: log.Named("stderr")}
}

// Start begins capturing. It must run before the audio device is opened.
// On error nothing is redirected and the program can continue.
func (c *Capture) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	c.orig = orig
	c.pipeRead = r
	c.pipeWrite = w
	c.done = make(chan struct{})
	c.started = true

	go func() {
		defer close(c.done)
		forward(r, c.log)
	}()

	return nil
}

// WriteOriginal writes to the real stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		_, _ = syscall.Write(c.orig, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores stderr and waits for the pending lines to be logged.
func (c *Capture) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	_ = dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)

	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()

	c.started = false
}
