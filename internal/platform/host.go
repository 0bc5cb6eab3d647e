package platform

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/text-overlay/internal/model"
)

// ErrUnsupported is returned for host requests the windowing driver cannot honor.
var ErrUnsupported = errors.New("not supported by the windowing driver")

// WindowOptions describes a window created through the host
type WindowOptions struct {
	Title     string
	Width     float32
	Height    float32
	Resizable bool

	// OnClosed runs after the window is closed and unregistered.
	OnClosed func()
}

// Host is the windowing layer the overlay talks to. All calls are best effort.
type Host interface {
	// Window returns the window registered under id.
	Window(id string) (fyne.Window, bool)
	// CreateWindow creates and registers a window under id. The window is
	// not shown; callers set content first.
	CreateWindow(id string, opts WindowOptions) fyne.Window
	// SetPassThrough asks for the window to ignore pointer input.
	SetPassThrough(id string, enabled bool) error
	// SetDisplay asks for the window to be placed on the given display.
	SetDisplay(id string, display model.Display) error
}

// FyneHost implements Host on top of a Fyne application.
type FyneHost struct {
	app fyne.App

	mu          sync.Mutex
	windows     map[string]fyne.Window
	passThrough map[string]bool
	display     map[string]model.Display
}

// NewFyneHost creates a host for app
func NewFyneHost(app fyne.App) *FyneHost {
	return &FyneHost{
		app:         app,
		windows:     make(map[string]fyne.Window),
		passThrough: make(map[string]bool),
		display:     make(map[string]model.Display),
	}
}

// Register adds an existing window under id. Closing it unregisters it and
// then calls onClosed, if set.
func (h *FyneHost) Register(id string, w fyne.Window, onClosed func()) {
	h.mu.Lock()
	h.windows[id] = w
	h.mu.Unlock()

	w.SetOnClosed(func() {
		h.forget(id, w)
		if onClosed != nil {
			onClosed()
		}
	})
}

// Window returns the window registered under id
func (h *FyneHost) Window(id string) (fyne.Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.windows[id]
	return w, ok
}

// CreateWindow creates a window and registers it under id
func (h *FyneHost) CreateWindow(id string, opts WindowOptions) fyne.Window {
	w := h.app.NewWindow(opts.Title)
	if opts.Width > 0 && opts.Height > 0 {
		w.Resize(fyne.NewSize(opts.Width, opts.Height))
	}
	w.SetFixedSize(!opts.Resizable)
	h.Register(id, w, opts.OnClosed)
	return w
}

// SetPassThrough records the request. Fyne windows always receive pointer
// input, so enabling pass-through reports ErrUnsupported.
func (h *FyneHost) SetPassThrough(id string, enabled bool) error {
	h.mu.Lock()
	_, ok := h.windows[id]
	h.passThrough[id] = enabled
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("window %q: not found", id)
	}
	if enabled {
		return fmt.Errorf("pass-through: %w", ErrUnsupported)
	}
	return nil
}

// SetDisplay records the request and centers the window on the primary
// display. Fyne does not expose monitor selection, so any other target
// reports ErrUnsupported.
func (h *FyneHost) SetDisplay(id string, display model.Display) error {
	h.mu.Lock()
	w, ok := h.windows[id]
	h.display[id] = display
	h.mu.Unlock()

	if !ok {
		return fmt.Errorf("window %q: not found", id)
	}
	if display != model.DisplayPrimary {
		return fmt.Errorf("display %s: %w", display, ErrUnsupported)
	}
	w.CenterOnScreen()
	return nil
}

// Requested returns the last pass-through and display requests for id
func (h *FyneHost) Requested(id string) (passThrough bool, display model.Display) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.passThrough[id], h.display[id]
}

func (h *FyneHost) forget(id string, w fyne.Window) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.windows[id] == w {
		delete(h.windows, id)
	}
}
