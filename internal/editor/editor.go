// Package editor provides the snippet editor window.
package editor

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
)

// Request opens the editor with prefilled fields.
type Request struct {
	Title      string   // heading inside the window
	Name       string
	Content    string
	Category   string   // preselected category
	Categories []string // cycler options in display order
}

// Window is the snippet editor dialog.
type Window struct {
	mu sync.Mutex

	title      string
	categories []string
	catIndex   int

	nameEditor    widget.Editor
	contentEditor widget.Editor
	categoryBtn   widget.Clickable
	saveBtn       widget.Clickable
	cancelBtn     widget.Clickable

	onSave func(name, content, category string)

	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates an editor window. onSave receives the field values when
// the user confirms.
func New(onSave func(name, content, category string)) *Window {
	w := &Window{onSave: onSave}
	w.nameEditor.SingleLine = true
	return w
}

// Show opens the editor with the given request. A visible window is
// re-filled in place.
func (w *Window) Show(req Request) {
	w.mu.Lock()

	w.title = req.Title
	w.categories = req.Categories
	w.catIndex = 0
	for i, c := range req.Categories {
		if c == req.Category {
			w.catIndex = i
			break
		}
	}
	w.nameEditor.SetText(req.Name)
	w.contentEditor.SetText(req.Content)

	if w.running {
		if w.window != nil {
			w.window.Invalidate()
		}
		w.mu.Unlock()
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	go w.runEventLoop()
}

// Hide closes the editor window.
func (w *Window) Hide() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	w.stopCh = nil
	w.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}

	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(time.Second):
		}
	}
}

// IsVisible returns true if window is currently shown.
func (w *Window) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Window) runEventLoop() {
	defer close(w.doneCh)

	w.window = new(app.Window)
	w.window.Option(
		app.Title("Shtamp"),
		app.Size(unit.Dp(440), unit.Dp(400)),
		app.MinSize(unit.Dp(380), unit.Dp(320)),
	)

	var ops op.Ops

	// Invalidation goroutine
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-w.stopCh:
				if w.window != nil {
					w.window.Perform(system.ActionClose)
				}
				return
			case <-ticker.C:
				if w.window != nil {
					w.window.Invalidate()
				}
			}
		}
	}()

	for {
		switch e := w.window.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			w.handleEvents(gtx)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) handleEvents(gtx layout.Context) {
	// Esc cancels the edit
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			go w.Hide()
			return
		}
	}

	// Cycle through the categories
	if w.categoryBtn.Clicked(gtx) {
		w.mu.Lock()
		if len(w.categories) > 0 {
			w.catIndex = (w.catIndex + 1) % len(w.categories)
		}
		w.mu.Unlock()
	}

	if w.cancelBtn.Clicked(gtx) {
		go w.Hide()
	}

	if w.saveBtn.Clicked(gtx) {
		name := w.nameEditor.Text()
		content := w.contentEditor.Text()
		category := w.currentCategory()
		if name == "" || content == "" {
			return
		}
		if w.onSave != nil {
			go w.onSave(name, content, category)
		}
		go w.Hide()
	}
}

func (w *Window) currentCategory() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.catIndex < 0 || w.catIndex >= len(w.categories) {
		return ""
	}
	return w.categories[w.catIndex]
}

func (w *Window) heading() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}
