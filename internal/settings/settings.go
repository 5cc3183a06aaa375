// Package settings provides Gio-based settings UI.
package settings

import (
	"strconv"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"

	"shtamp/internal/config"
	"shtamp/internal/i18n"
)

// Colors are defined in widgets.go

// Window represents the settings dialog window.
type Window struct {
	mu     sync.Mutex
	config *config.Config

	// Window state
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// UI state - Hotkey
	hotkeyModifiers map[config.Modifier]bool
	hotkeyKey       config.Key

	// Widgets - Hotkey
	hotkeyEditBtn   widget.Clickable
	hotkeyClearBtn  widget.Clickable
	recordingHotkey bool
	recordedMods    map[config.Modifier]bool
	recordedKey     config.Key
	hotkeyFilters   []event.Filter // cached filters for hotkey recording

	// Widgets - Toggles
	notifyEnabled widget.Bool
	tapEnabled    widget.Bool
	thresholdEd   widget.Editor

	// Widgets - UI Language
	selectedUILang i18n.Language
	langButtons    map[i18n.Language]*widget.Clickable

	// Widgets - Buttons
	applyBtn  widget.Clickable
	cancelBtn widget.Clickable

	// Scroll state
	contentList widget.List // Main scrollable content

	// Callbacks
	onHotkeyChange        func(config.HotkeyConfig)
	onDoubleTapChange     func(config.DoubleTapConfig)
	onNotificationsChange func(enabled bool)
	onUILangChange        func(lang i18n.Language)
}

// New creates a new settings window.
func New(cfg *config.Config) *Window {
	w := &Window{
		config:          cfg,
		hotkeyModifiers: make(map[config.Modifier]bool),
	}

	// Load current hotkey from config
	currentHotkey := cfg.Hotkey()
	for _, m := range currentHotkey.Modifiers {
		w.hotkeyModifiers[m] = true
	}
	w.hotkeyKey = currentHotkey.Key

	// Initialize toggles
	w.notifyEnabled.Value = cfg.NotificationsEnabled()
	tap := cfg.DoubleTap()
	w.tapEnabled.Value = tap.Enabled
	w.thresholdEd.SingleLine = true
	w.thresholdEd.Filter = "0123456789"
	w.thresholdEd.SetText(strconv.Itoa(tap.ThresholdMS))

	// Initialize UI language selector
	w.langButtons = make(map[i18n.Language]*widget.Clickable)
	for _, lang := range i18n.AvailableLanguages() {
		w.langButtons[lang] = new(widget.Clickable)
	}
	w.selectedUILang = i18n.GetLanguage()

	// Initialize lists
	w.contentList.Axis = layout.Vertical

	// Initialize hotkey filters once
	w.initHotkeyFilters()

	return w
}

func (w *Window) initHotkeyFilters() {
	modifiers := key.ModCtrl | key.ModShift | key.ModAlt | key.ModSuper

	filters := []key.Filter{
		{Name: key.NameSpace, Optional: modifiers},
		{Name: key.NameTab, Optional: modifiers},
		{Name: key.NameReturn, Optional: modifiers},
		{Name: key.NameEscape, Optional: modifiers},
		{Name: key.NameF1, Optional: modifiers},
		{Name: key.NameF2, Optional: modifiers},
		{Name: key.NameF3, Optional: modifiers},
		{Name: key.NameF4, Optional: modifiers},
		{Name: key.NameF5, Optional: modifiers},
		{Name: key.NameF6, Optional: modifiers},
		{Name: key.NameF7, Optional: modifiers},
		{Name: key.NameF8, Optional: modifiers},
		{Name: key.NameF9, Optional: modifiers},
		{Name: key.NameF10, Optional: modifiers},
		{Name: key.NameF11, Optional: modifiers},
		{Name: key.NameF12, Optional: modifiers},
	}
	// Add letters A-Z
	for c := 'A'; c <= 'Z'; c++ {
		filters = append(filters, key.Filter{Name: key.Name(string(c)), Optional: modifiers})
	}
	// Also capture modifier-only events
	filters = append(filters, key.Filter{Optional: modifiers})

	w.hotkeyFilters = make([]event.Filter, len(filters))
	for i, f := range filters {
		w.hotkeyFilters[i] = f
	}
}

// OnHotkeyChange sets the callback for when user changes the hotkey.
// An empty combo means the hotkey was cleared.
func (w *Window) OnHotkeyChange(fn func(config.HotkeyConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onHotkeyChange = fn
}

// OnDoubleTapChange sets the callback for when user changes double-Shift settings.
func (w *Window) OnDoubleTapChange(fn func(config.DoubleTapConfig)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onDoubleTapChange = fn
}

// OnNotificationsChange sets the callback for when user toggles notifications.
func (w *Window) OnNotificationsChange(fn func(enabled bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onNotificationsChange = fn
}

// OnUILangChange sets the callback for when user changes UI language.
func (w *Window) OnUILangChange(fn func(lang i18n.Language)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onUILangChange = fn
}

// Show displays the settings window (non-blocking).
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}

	// Reload current settings
	currentHotkey := w.config.Hotkey()
	w.hotkeyModifiers = make(map[config.Modifier]bool)
	for _, m := range currentHotkey.Modifiers {
		w.hotkeyModifiers[m] = true
	}
	w.hotkeyKey = currentHotkey.Key
	w.recordingHotkey = false

	w.notifyEnabled.Value = w.config.NotificationsEnabled()
	tap := w.config.DoubleTap()
	w.tapEnabled.Value = tap.Enabled
	w.thresholdEd.SetText(strconv.Itoa(tap.ThresholdMS))

	w.selectedUILang = i18n.GetLanguage()

	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})

	go w.runEventLoop()
}

// Hide closes the settings window.
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
		app.Title("Shtamp - "+i18n.T("settings_title")),
		app.Size(unit.Dp(440), unit.Dp(540)),
		app.MinSize(unit.Dp(400), unit.Dp(460)),
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
	// Handle hotkey edit button (toggles recording)
	if w.hotkeyEditBtn.Clicked(gtx) {
		w.mu.Lock()
		if w.recordingHotkey {
			w.recordingHotkey = false
		} else {
			w.recordingHotkey = true
			w.recordedMods = make(map[config.Modifier]bool)
			w.recordedKey = ""
		}
		w.mu.Unlock()
	}

	// Handle hotkey clear button
	if w.hotkeyClearBtn.Clicked(gtx) {
		w.mu.Lock()
		w.hotkeyModifiers = make(map[config.Modifier]bool)
		w.hotkeyKey = ""
		w.mu.Unlock()
	}

	// Handle hotkey recording
	if w.recordingHotkey {
		w.handleHotkeyRecording(gtx)
	}

	// Handle UI language buttons - apply immediately
	for lang, btn := range w.langButtons {
		if btn.Clicked(gtx) {
			w.mu.Lock()
			if w.selectedUILang != lang {
				w.selectedUILang = lang
				i18n.SetLanguage(lang)
				w.config.SetUILanguage(string(lang))
				callback := w.onUILangChange
				w.mu.Unlock()
				if callback != nil {
					callback(lang)
				}
			} else {
				w.mu.Unlock()
			}
		}
	}

	// Handle cancel button
	if w.cancelBtn.Clicked(gtx) {
		go w.Hide()
	}

	// Handle apply button
	if w.applyBtn.Clicked(gtx) {
		w.applySettings()
	}
}

func (w *Window) handleHotkeyRecording(gtx layout.Context) {
	// Track modifiers at the time of key press (not release)
	var pressedMods map[config.Modifier]bool

	for {
		event, ok := gtx.Event(w.hotkeyFilters...)
		if !ok {
			break
		}

		switch e := event.(type) {
		case key.Event:
			w.mu.Lock()

			// Map key name to our config key
			if e.State == key.Press {
				// Store modifiers at the time of key press
				pressedMods = map[config.Modifier]bool{
					config.ModCtrl:  e.Modifiers.Contain(key.ModCtrl),
					config.ModShift: e.Modifiers.Contain(key.ModShift),
					config.ModAlt:   e.Modifiers.Contain(key.ModAlt),
					config.ModSuper: e.Modifiers.Contain(key.ModSuper),
				}
				w.recordedMods = pressedMods

				switch e.Name {
				case key.NameSpace:
					w.recordedKey = config.KeySpace
				case key.NameReturn:
					w.recordedKey = config.KeyReturn
				case key.NameTab:
					w.recordedKey = config.KeyTab
				case key.NameEscape:
					// Cancel recording
					w.recordingHotkey = false
					w.mu.Unlock()
					return
				case key.NameF1:
					w.recordedKey = config.KeyF1
				case key.NameF2:
					w.recordedKey = config.KeyF2
				case key.NameF3:
					w.recordedKey = config.KeyF3
				case key.NameF4:
					w.recordedKey = config.KeyF4
				case key.NameF5:
					w.recordedKey = config.KeyF5
				case key.NameF6:
					w.recordedKey = config.KeyF6
				case key.NameF7:
					w.recordedKey = config.KeyF7
				case key.NameF8:
					w.recordedKey = config.KeyF8
				case key.NameF9:
					w.recordedKey = config.KeyF9
				case key.NameF10:
					w.recordedKey = config.KeyF10
				case key.NameF11:
					w.recordedKey = config.KeyF11
				case key.NameF12:
					w.recordedKey = config.KeyF12
				default:
					// Letter keys (A-Z)
					if len(e.Name) == 1 && e.Name >= "A" && e.Name <= "Z" {
						w.recordedKey = config.Key(string(e.Name[0] + 32)) // lowercase
					}
				}
			}

			// Check if we have modifiers + key
			hasModifiers := w.recordedMods[config.ModCtrl] || w.recordedMods[config.ModShift] ||
				w.recordedMods[config.ModAlt] || w.recordedMods[config.ModSuper]
			hasKey := w.recordedKey != ""

			// On key release, if we have modifiers + key, finish recording
			if e.State == key.Release && hasModifiers && hasKey {
				// Apply the recorded hotkey
				w.hotkeyModifiers = make(map[config.Modifier]bool)
				for k, v := range w.recordedMods {
					w.hotkeyModifiers[k] = v
				}
				w.hotkeyKey = w.recordedKey
				w.recordingHotkey = false
			}

			w.mu.Unlock()
		}
	}
}

func (w *Window) applySettings() {
	w.mu.Lock()
	hotkeyCallback := w.onHotkeyChange
	tapCallback := w.onDoubleTapChange
	notifyCallback := w.onNotificationsChange
	notifyEnabled := w.notifyEnabled.Value

	// Build hotkey config
	var mods []config.Modifier
	if w.hotkeyModifiers[config.ModCtrl] {
		mods = append(mods, config.ModCtrl)
	}
	if w.hotkeyModifiers[config.ModShift] {
		mods = append(mods, config.ModShift)
	}
	if w.hotkeyModifiers[config.ModAlt] {
		mods = append(mods, config.ModAlt)
	}
	if w.hotkeyModifiers[config.ModSuper] {
		mods = append(mods, config.ModSuper)
	}
	newHotkey := config.HotkeyConfig{
		Modifiers: mods,
		Key:       w.hotkeyKey,
	}

	// Build double tap config
	threshold := w.config.DoubleTap().ThresholdMS
	if v, err := strconv.Atoi(w.thresholdEd.Text()); err == nil && v > 0 {
		threshold = v
	}
	newTap := config.DoubleTapConfig{
		Enabled:     w.tapEnabled.Value,
		ThresholdMS: threshold,
	}
	w.mu.Unlock()

	// Apply hotkey if changed. An empty combo clears it.
	currentHotkey := w.config.Hotkey()
	if newHotkey.String() != currentHotkey.String() {
		if hotkeyCallback != nil {
			hotkeyCallback(newHotkey)
		}
	}

	if tapCallback != nil {
		tapCallback(newTap)
	}

	if notifyCallback != nil {
		notifyCallback(notifyEnabled)
	}

	go w.Hide()
}

func (w *Window) getHotkeyState() (mods map[config.Modifier]bool, key config.Key) {
	w.mu.Lock()
	defer w.mu.Unlock()
	// Return a copy
	modsCopy := make(map[config.Modifier]bool)
	for k, v := range w.hotkeyModifiers {
		modsCopy[k] = v
	}
	return modsCopy, w.hotkeyKey
}

func (w *Window) isRecordingHotkey() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.recordingHotkey
}

func (w *Window) getRecordingState() (mods map[config.Modifier]bool, key config.Key) {
	w.mu.Lock()
	defer w.mu.Unlock()
	modsCopy := make(map[config.Modifier]bool)
	for k, v := range w.recordedMods {
		modsCopy[k] = v
	}
	return modsCopy, w.recordedKey
}

func (w *Window) getSelectedUILang() i18n.Language {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selectedUILang
}

func (w *Window) getLangButton(lang i18n.Language) *widget.Clickable {
	if w.langButtons == nil {
		w.langButtons = make(map[i18n.Language]*widget.Clickable)
	}
	if w.langButtons[lang] == nil {
		w.langButtons[lang] = new(widget.Clickable)
	}
	return w.langButtons[lang]
}
