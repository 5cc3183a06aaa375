// Package config предоставляет конфигурацию приложения с сохранением в файл.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Modifier представляет модификатор клавиши.
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super" // Win/Cmd
)

// Key представляет клавишу.
type Key string

const (
	KeySpace  Key = "space"
	KeyReturn Key = "return"
	KeyTab    Key = "tab"
	KeyA      Key = "a"
	KeyB      Key = "b"
	KeyC      Key = "c"
	KeyD      Key = "d"
	KeyE      Key = "e"
	KeyF      Key = "f"
	KeyG      Key = "g"
	KeyH      Key = "h"
	KeyI      Key = "i"
	KeyJ      Key = "j"
	KeyK      Key = "k"
	KeyL      Key = "l"
	KeyM      Key = "m"
	KeyN      Key = "n"
	KeyO      Key = "o"
	KeyP      Key = "p"
	KeyQ      Key = "q"
	KeyR      Key = "r"
	KeyS      Key = "s"
	KeyT      Key = "t"
	KeyU      Key = "u"
	KeyV      Key = "v"
	KeyW      Key = "w"
	KeyX      Key = "x"
	KeyY      Key = "y"
	KeyZ      Key = "z"
	KeyF1     Key = "f1"
	KeyF2     Key = "f2"
	KeyF3     Key = "f3"
	KeyF4     Key = "f4"
	KeyF5     Key = "f5"
	KeyF6     Key = "f6"
	KeyF7     Key = "f7"
	KeyF8     Key = "f8"
	KeyF9     Key = "f9"
	KeyF10    Key = "f10"
	KeyF11    Key = "f11"
	KeyF12    Key = "f12"
)

// HotkeyConfig хранит настройки горячей клавиши. Пустая Key означает,
// что комбинация отключена и работает только двойной Shift.
type HotkeyConfig struct {
	Modifiers []Modifier `json:"modifiers"`
	Key       Key        `json:"key"`
}

// Enabled сообщает, задана ли комбинация.
func (h HotkeyConfig) Enabled() bool {
	return h.Key != ""
}

// String возвращает строковое представление горячей клавиши.
func (h HotkeyConfig) String() string {
	result := ""
	for _, m := range h.Modifiers {
		if result != "" {
			result += "+"
		}
		result += string(m)
	}
	if result != "" {
		result += "+"
	}
	result += string(h.Key)
	return result
}

// DoubleTapConfig хранит настройки двойного нажатия Shift.
type DoubleTapConfig struct {
	Enabled     bool `json:"enabled"`
	ThresholdMS int  `json:"threshold_ms"`
}

// Threshold возвращает окно двойного нажатия.
func (d DoubleTapConfig) Threshold() time.Duration {
	return time.Duration(d.ThresholdMS) * time.Millisecond
}

// configData структура для сериализации. Указатели отличают
// отсутствующее поле от явно заданного пустого значения.
type configData struct {
	UILanguage    string           `json:"ui_language,omitempty"`
	Notifications bool             `json:"notifications"`
	Hotkey        *HotkeyConfig    `json:"hotkey,omitempty"`
	DoubleTap     *DoubleTapConfig `json:"double_tap,omitempty"`
}

// Config хранит настройки приложения.
type Config struct {
	mu                sync.RWMutex
	uiLanguage        string
	notifications     bool
	hotkey            HotkeyConfig
	doubleTap         DoubleTapConfig
	configPath        string
	onHotkeyChange    func(HotkeyConfig)
	onDoubleTapChange func(DoubleTapConfig)
}

// New создаёт конфигурацию в каталоге настроек пользователя, загружая из
// файла или с настройками по умолчанию.
func New() *Config {
	path := ""
	if dir, err := os.UserConfigDir(); err == nil {
		path = filepath.Join(dir, "Shtamp", "config.json")
	}
	return NewAt(path)
}

// NewAt создаёт конфигурацию над указанным файлом.
func NewAt(path string) *Config {
	c := &Config{
		uiLanguage:    "ru", // По умолчанию русский интерфейс
		notifications: true,
		hotkey: HotkeyConfig{
			Modifiers: []Modifier{ModCtrl, ModShift},
			Key:       KeyP,
		},
		doubleTap: DoubleTapConfig{
			Enabled:     true,
			ThresholdMS: 400,
		},
		configPath: path,
	}

	c.load()

	return c
}

// load загружает конфигурацию из файла.
func (c *Config) load() {
	if c.configPath == "" {
		return
	}

	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return // Файл не существует, используем defaults
	}

	var cfg configData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return
	}

	if cfg.UILanguage != "" {
		c.uiLanguage = cfg.UILanguage
	}
	c.notifications = cfg.Notifications
	if cfg.Hotkey != nil {
		c.hotkey = *cfg.Hotkey
	}
	if cfg.DoubleTap != nil {
		c.doubleTap = *cfg.DoubleTap
	}
	if c.doubleTap.ThresholdMS <= 0 {
		c.doubleTap.ThresholdMS = 400
	}
}

// save сохраняет конфигурацию в файл.
func (c *Config) save() {
	if c.configPath == "" {
		return
	}

	hotkey := c.hotkey
	doubleTap := c.doubleTap
	cfg := configData{
		UILanguage:    c.uiLanguage,
		Notifications: c.notifications,
		Hotkey:        &hotkey,
		DoubleTap:     &doubleTap,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return
	}

	os.MkdirAll(filepath.Dir(c.configPath), 0755)
	os.WriteFile(c.configPath, data, 0644)
}

// UILanguage возвращает язык интерфейса.
func (c *Config) UILanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.uiLanguage
}

// SetUILanguage устанавливает язык интерфейса.
func (c *Config) SetUILanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uiLanguage = lang
	c.save()
}

// SetNotifications включает/выключает уведомления.
func (c *Config) SetNotifications(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = enabled
	c.save()
}

// ToggleNotifications переключает состояние уведомлений.
func (c *Config) ToggleNotifications() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = !c.notifications
	c.save()
	return c.notifications
}

// NotificationsEnabled возвращает true если уведомления включены.
func (c *Config) NotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifications
}

// Hotkey возвращает текущую горячую клавишу.
func (c *Config) Hotkey() HotkeyConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hotkey
}

// SetHotkey устанавливает горячую клавишу. Пустая Key отключает
// комбинацию.
func (c *Config) SetHotkey(hk HotkeyConfig) {
	c.mu.Lock()
	c.hotkey = hk
	callback := c.onHotkeyChange
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(hk)
	}
}

// OnHotkeyChange устанавливает callback для изменения горячей клавиши.
func (c *Config) OnHotkeyChange(fn func(HotkeyConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onHotkeyChange = fn
}

// DoubleTap возвращает настройки двойного нажатия.
func (c *Config) DoubleTap() DoubleTapConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doubleTap
}

// SetDoubleTap устанавливает настройки двойного нажатия.
func (c *Config) SetDoubleTap(dt DoubleTapConfig) {
	c.mu.Lock()
	if dt.ThresholdMS <= 0 {
		dt.ThresholdMS = 400
	}
	c.doubleTap = dt
	callback := c.onDoubleTapChange
	c.save()
	c.mu.Unlock()

	if callback != nil {
		callback(dt)
	}
}

// OnDoubleTapChange устанавливает callback для изменения настроек
// двойного нажатия.
func (c *Config) OnDoubleTapChange(fn func(DoubleTapConfig)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDoubleTapChange = fn
}

// AvailableModifiers возвращает список доступных модификаторов.
func AvailableModifiers() []Modifier {
	return []Modifier{ModCtrl, ModShift, ModAlt, ModSuper}
}

// AvailableKeys возвращает список доступных клавиш.
func AvailableKeys() []Key {
	return []Key{
		KeySpace, KeyReturn, KeyTab,
		KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
		KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
		KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	}
}
