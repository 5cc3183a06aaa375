// Package picker provides the floating snippet window.
package picker

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

	"shtamp/internal/i18n"
	"shtamp/internal/model"
)

const (
	windowWidth  = 420
	windowHeight = 460
)

// Callbacks deliver user intent to the owner. The snippet tree is never
// mutated from this package.
type Callbacks struct {
	OnSelect          func(category, name string)
	OnCopy            func(category, name string)
	OnToggle          func(category string, expanded bool)
	OnReorderSnippet  func(category, dragged, target string)
	OnReorderCategory func(dragged, target string)
	OnAdd             func(category string)
	OnEdit            func(category, name string)
	OnRenameCategory  func(category string)
	OnDelete          func(category, name string)
	OnDeleteCategory  func(category string)
	OnNewCategory     func()
	OnHidden          func()
}

// Window is the floating snippet list.
type Window struct {
	mu        sync.Mutex
	callbacks Callbacks
	rows      []row
	selected  int

	rowBtns map[string]*widget.Clickable
	list    widget.List

	addBtn    widget.Clickable
	editBtn   widget.Clickable
	deleteBtn widget.Clickable
	newCatBtn widget.Clickable

	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a picker window. Callbacks may be partially filled.
func New(callbacks Callbacks) *Window {
	w := &Window{
		callbacks: callbacks,
		rowBtns:   make(map[string]*widget.Clickable),
	}
	w.list.Axis = layout.Vertical
	return w
}

// Refresh replaces the visible rows with the given tree state. The
// selection follows its row by key when the row survives.
func (w *Window) Refresh(views []model.CategoryView) {
	w.mu.Lock()

	var selKey string
	if w.selected >= 0 && w.selected < len(w.rows) {
		selKey = w.rows[w.selected].key()
	}

	w.rows = flatten(views)

	found := false
	if selKey != "" {
		for i, r := range w.rows {
			if r.key() == selKey {
				w.selected = i
				found = true
				break
			}
		}
	}
	if !found {
		w.selected = clampSelection(w.rows, w.selected)
	}

	// Drop buttons for rows that no longer exist
	alive := make(map[string]*widget.Clickable, len(w.rows))
	for _, r := range w.rows {
		k := r.key()
		if btn, ok := w.rowBtns[k]; ok {
			alive[k] = btn
		}
	}
	w.rowBtns = alive

	win := w.window
	w.mu.Unlock()

	if win != nil {
		win.Invalidate()
	}
}

// Show displays the picker window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		if w.window != nil {
			w.window.Invalidate()
		}
		return
	}

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop()
}

// Hide closes the picker window.
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

	title := "Shtamp - " + i18n.T("picker_title")

	w.window = new(app.Window)
	w.window.Option(
		app.Title(title),
		app.Size(unit.Dp(windowWidth), unit.Dp(windowHeight)),
		app.Decorated(false),
	)

	var ops op.Ops

	// Position window after it appears
	go positionWindow(title, windowWidth, windowHeight)

	// Invalidation and close goroutine
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
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
			w.handleKeys(gtx)
			w.handleActions(gtx)
			w.draw(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (w *Window) handleKeys(gtx layout.Context) {
	// Esc hides the window
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			w.hideWithCallback()
			return
		}
	}

	// Enter pastes the snippet or toggles a category,
	// with Ctrl it copies without pasting
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameReturn, Optional: key.ModCtrl})
		if !ok {
			break
		}
		e, ok := event.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		if e.Modifiers.Contain(key.ModCtrl) {
			w.copySelection()
		} else {
			w.activateSelection()
		}
	}

	// Up moves the selection, with Ctrl it reorders the row
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameUpArrow, Optional: key.ModCtrl})
		if !ok {
			break
		}
		e, ok := event.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		if e.Modifiers.Contain(key.ModCtrl) {
			w.requestReorder(true)
		} else {
			w.moveSelection(-1)
		}
	}

	// Down
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameDownArrow, Optional: key.ModCtrl})
		if !ok {
			break
		}
		e, ok := event.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		if e.Modifiers.Contain(key.ModCtrl) {
			w.requestReorder(false)
		} else {
			w.moveSelection(1)
		}
	}

	// Left/right collapse and expand the category
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameLeftArrow})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			w.requestExpand(false)
		}
	}
	for {
		event, ok := gtx.Event(key.Filter{Name: key.NameRightArrow})
		if !ok {
			break
		}
		if e, ok := event.(key.Event); ok && e.State == key.Press {
			w.requestExpand(true)
		}
	}
}

func (w *Window) handleActions(gtx layout.Context) {
	if w.addBtn.Clicked(gtx) {
		r, ok := w.selectedRow()
		cat := ""
		if ok {
			cat = r.category
		}
		if w.callbacks.OnAdd != nil {
			go w.callbacks.OnAdd(cat)
		}
	}

	if w.editBtn.Clicked(gtx) {
		if r, ok := w.selectedRow(); ok {
			switch {
			case r.kind == rowSnippet && w.callbacks.OnEdit != nil:
				go w.callbacks.OnEdit(r.category, r.name)
			case r.kind == rowCategory && !r.reserved && w.callbacks.OnRenameCategory != nil:
				go w.callbacks.OnRenameCategory(r.category)
			}
		}
	}

	if w.deleteBtn.Clicked(gtx) {
		if r, ok := w.selectedRow(); ok {
			switch {
			case r.kind == rowSnippet && w.callbacks.OnDelete != nil:
				go w.callbacks.OnDelete(r.category, r.name)
			case r.kind == rowCategory && !r.reserved && w.callbacks.OnDeleteCategory != nil:
				go w.callbacks.OnDeleteCategory(r.category)
			}
		}
	}

	if w.newCatBtn.Clicked(gtx) && w.callbacks.OnNewCategory != nil {
		go w.callbacks.OnNewCategory()
	}
}

func (w *Window) selectedRow() (row, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.selected < 0 || w.selected >= len(w.rows) {
		return row{}, false
	}
	return w.rows[w.selected], true
}

func (w *Window) moveSelection(delta int) {
	w.mu.Lock()
	w.selected = clampSelection(w.rows, w.selected+delta)
	w.mu.Unlock()
}

func (w *Window) requestReorder(up bool) {
	w.mu.Lock()
	var op reorderOp
	var ok bool
	if up {
		op, ok = reorderUp(w.rows, w.selected)
	} else {
		op, ok = reorderDown(w.rows, w.selected)
	}
	w.mu.Unlock()
	if !ok {
		return
	}

	if op.category {
		if w.callbacks.OnReorderCategory != nil {
			go w.callbacks.OnReorderCategory(op.dragged, op.target)
		}
		return
	}
	if w.callbacks.OnReorderSnippet != nil {
		go w.callbacks.OnReorderSnippet(op.inCat, op.dragged, op.target)
	}
}

func (w *Window) requestExpand(expanded bool) {
	w.mu.Lock()
	var cat string
	current := expanded
	if w.selected >= 0 && w.selected < len(w.rows) {
		r := w.rows[w.selected]
		cat = r.category
		if r.kind == rowCategory {
			current = r.expanded
		} else {
			// A visible snippet means its category is expanded
			current = true
		}
	}
	// Collapsing moves the selection to the header
	if cat != "" && !expanded && current {
		for i, r := range w.rows {
			if r.kind == rowCategory && r.category == cat {
				w.selected = i
				break
			}
		}
	}
	w.mu.Unlock()

	if cat == "" || current == expanded {
		return
	}
	if w.callbacks.OnToggle != nil {
		go w.callbacks.OnToggle(cat, expanded)
	}
}

func (w *Window) activateSelection() {
	r, ok := w.selectedRow()
	if !ok {
		return
	}

	if r.kind == rowCategory {
		if w.callbacks.OnToggle != nil {
			go w.callbacks.OnToggle(r.category, !r.expanded)
		}
		return
	}

	if w.callbacks.OnSelect != nil {
		go w.callbacks.OnSelect(r.category, r.name)
	}
	go w.Hide()
}

func (w *Window) copySelection() {
	r, ok := w.selectedRow()
	if !ok || r.kind != rowSnippet {
		return
	}

	if w.callbacks.OnCopy != nil {
		go w.callbacks.OnCopy(r.category, r.name)
	}
	go w.Hide()
}

func (w *Window) hideWithCallback() {
	if w.callbacks.OnHidden != nil {
		go w.callbacks.OnHidden()
	}
	go w.Hide()
}

func (w *Window) getRowButton(key string) *widget.Clickable {
	if w.rowBtns[key] == nil {
		w.rowBtns[key] = new(widget.Clickable)
	}
	return w.rowBtns[key]
}
