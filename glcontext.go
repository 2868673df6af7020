package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glContext owns the window and its OpenGL context. Window and GL calls are
// executed by Serve on the locked main thread, other goroutines submit them
// through MainThread.
type glContext struct {
	mChan chan func()
	mDone chan struct{}

	window *glfw.Window

	// written by the key callback during PollEvents, read between
	// MainThread calls
	keyPressed map[glfw.Key]bool
	keyTyped   map[glfw.Key]bool
}

func newGLContext() *glContext {
	return &glContext{
		mChan: make(chan func()),
		mDone: make(chan struct{}),

		keyPressed: map[glfw.Key]bool{},
		keyTyped:   map[glfw.Key]bool{},
	}
}

// Serve executes submitted functions until Stop is called. It must run on
// the goroutine locked to the main OS thread.
func (c *glContext) Serve() {
	for mf := range c.mChan {
		mf()
		c.mDone <- struct{}{}
	}
}

// Stop ends Serve. No MainThread call may follow.
func (c *glContext) Stop() {
	close(c.mChan)
}

// run function on main thread
func (c *glContext) MainThread(f func()) {
	c.mChan <- f
	<-c.mDone
}

// Open creates the window and makes its context current on the main thread.
func (c *glContext) Open(title string, w, h int) error {
	var err error
	c.MainThread(func() {
		err = c.open(title, w, h)
	})
	return err
}

func (c *glContext) open(title string, w, h int) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(w, h, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	c.window = window
	window.SetKeyCallback(c.onKey)

	fw, fh := window.GetFramebufferSize()
	slog.Debug("window created", "size", [2]int{w, h}, "framebuffer", [2]int{fw, fh})

	return nil
}

func (c *glContext) isRunning() bool {
	var running bool
	c.MainThread(func() {
		running = !c.window.ShouldClose()
	})
	return running
}

// Update presents the frame and processes pending events.
func (c *glContext) Update() {
	c.MainThread(func() {
		clear(c.keyTyped)
		c.window.SwapBuffers()
		glfw.PollEvents()
	})
}

func (c *glContext) Close() {
	c.MainThread(func() {
		c.window.SetShouldClose(true)
	})
}

func (c *glContext) Cleanup() {
	c.MainThread(func() {
		c.window.Destroy()
		glfw.Terminate()
	})
}

func (c *glContext) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		c.keyPressed[key] = true
		c.keyTyped[key] = true
	case glfw.Release:
		delete(c.keyPressed, key)
	}
}

func (c *glContext) IsKeyDown(key glfw.Key) bool {
	return c.keyPressed[key]
}

// IsKeyTyped reports a key press since the last Update.
func (c *glContext) IsKeyTyped(key glfw.Key) bool {
	return c.keyTyped[key]
}
