// Package tray предоставляет системный трей с меню.
package tray

import (
	"github.com/getlantern/systray"
	"shtamp/internal/i18n"
	"shtamp/internal/icon"
)

// State представляет состояние приложения для отображения в трее.
type State int

const (
	StateIdle State = iota
	StateOpen
)

// Callbacks содержит обработчики событий меню.
type Callbacks struct {
	OnOpen                func()
	OnNotificationsToggle func() bool
	OnAutostartToggle     func() bool
	OnSettingsClick       func()
	OnQuit                func()
}

// Tray управляет иконкой в системном трее.
type Tray struct {
	callbacks   Callbacks
	notifyInit  bool
	autoInit    bool
	status      *systray.MenuItem
	openBtn     *systray.MenuItem
	notifyOn    *systray.MenuItem
	autostartOn *systray.MenuItem
	settingsBtn *systray.MenuItem
	quitBtn     *systray.MenuItem
}

// New создаёт новый Tray. Флаги задают начальное состояние чекбоксов.
func New(callbacks Callbacks, notifications, autostart bool) *Tray {
	return &Tray{
		callbacks:  callbacks,
		notifyInit: notifications,
		autoInit:   autostart,
	}
}

// Run запускает системный трей. Блокирующая функция.
func (t *Tray) Run(onReady func()) {
	systray.Run(func() {
		t.onReady()
		if onReady != nil {
			onReady()
		}
	}, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(icon.Idle())
	systray.SetTitle("Shtamp")
	systray.SetTooltip(i18n.T("app_tooltip"))

	// Статус
	t.status = systray.AddMenuItem(i18n.T("tray_ready"), "")
	t.status.Disable()

	systray.AddSeparator()

	// Открыть окно сниппетов
	t.openBtn = systray.AddMenuItem(i18n.T("tray_open"), i18n.T("tray_open_hint"))

	systray.AddSeparator()

	// Уведомления
	t.notifyOn = systray.AddMenuItemCheckbox(i18n.T("tray_notifications"), i18n.T("tray_notifications_hint"), t.notifyInit)

	// Автозапуск
	t.autostartOn = systray.AddMenuItemCheckbox(i18n.T("tray_autostart"), i18n.T("tray_autostart_hint"), t.autoInit)

	// Настройки
	t.settingsBtn = systray.AddMenuItem(i18n.T("tray_settings"), i18n.T("tray_settings_hint"))

	systray.AddSeparator()

	// Выход
	t.quitBtn = systray.AddMenuItem(i18n.T("tray_quit"), i18n.T("tray_quit_hint"))

	// Обработка событий меню
	go t.handleMenuEvents()
}

func (t *Tray) handleMenuEvents() {
	for {
		select {
		// Открыть окно
		case <-t.openBtn.ClickedCh:
			if t.callbacks.OnOpen != nil {
				t.callbacks.OnOpen()
			}

		// Уведомления
		case <-t.notifyOn.ClickedCh:
			if t.callbacks.OnNotificationsToggle != nil {
				enabled := t.callbacks.OnNotificationsToggle()
				if enabled {
					t.notifyOn.Check()
				} else {
					t.notifyOn.Uncheck()
				}
			}

		// Автозапуск
		case <-t.autostartOn.ClickedCh:
			if t.callbacks.OnAutostartToggle != nil {
				enabled := t.callbacks.OnAutostartToggle()
				if enabled {
					t.autostartOn.Check()
				} else {
					t.autostartOn.Uncheck()
				}
			}

		// Настройки
		case <-t.settingsBtn.ClickedCh:
			if t.callbacks.OnSettingsClick != nil {
				t.callbacks.OnSettingsClick()
			}

		// Выход
		case <-t.quitBtn.ClickedCh:
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			systray.Quit()
		}
	}
}

// SetState устанавливает состояние приложения и обновляет иконку.
func (t *Tray) SetState(state State) {
	switch state {
	case StateIdle:
		systray.SetIcon(icon.Idle())
		systray.SetTooltip("Shtamp - " + i18n.T("tray_ready"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_ready"))
		}
	case StateOpen:
		systray.SetIcon(icon.Active())
		systray.SetTooltip("Shtamp - " + i18n.T("tray_window_open"))
		if t.status != nil {
			t.status.SetTitle(i18n.T("tray_window_open"))
		}
	}
}

// SetNotifications обновляет чекбокс уведомлений.
func (t *Tray) SetNotifications(enabled bool) {
	if t.notifyOn == nil {
		return
	}
	if enabled {
		t.notifyOn.Check()
	} else {
		t.notifyOn.Uncheck()
	}
}

func (t *Tray) onExit() {
	// Cleanup при выходе
}

// Quit закрывает системный трей.
func (t *Tray) Quit() {
	systray.Quit()
}

// RefreshUI обновляет все тексты меню на текущем языке.
func (t *Tray) RefreshUI() {
	systray.SetTooltip(i18n.T("app_tooltip"))

	if t.status != nil {
		t.status.SetTitle(i18n.T("tray_ready"))
	}
	if t.openBtn != nil {
		t.openBtn.SetTitle(i18n.T("tray_open"))
		t.openBtn.SetTooltip(i18n.T("tray_open_hint"))
	}
	if t.notifyOn != nil {
		t.notifyOn.SetTitle(i18n.T("tray_notifications"))
		t.notifyOn.SetTooltip(i18n.T("tray_notifications_hint"))
	}
	if t.autostartOn != nil {
		t.autostartOn.SetTitle(i18n.T("tray_autostart"))
		t.autostartOn.SetTooltip(i18n.T("tray_autostart_hint"))
	}
	if t.settingsBtn != nil {
		t.settingsBtn.SetTitle(i18n.T("tray_settings"))
		t.settingsBtn.SetTooltip(i18n.T("tray_settings_hint"))
	}
	if t.quitBtn != nil {
		t.quitBtn.SetTitle(i18n.T("tray_quit"))
		t.quitBtn.SetTooltip(i18n.T("tray_quit_hint"))
	}
}
