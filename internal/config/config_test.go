package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	assert.Equal(t, "ru", c.UILanguage())
	assert.True(t, c.NotificationsEnabled())
	assert.Equal(t, HotkeyConfig{Modifiers: []Modifier{ModCtrl, ModShift}, Key: KeyP}, c.Hotkey())
	assert.Equal(t, DoubleTapConfig{Enabled: true, ThresholdMS: 400}, c.DoubleTap())
}

func TestConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := NewAt(path)
	c.SetUILanguage("en")
	c.SetNotifications(false)
	c.SetHotkey(HotkeyConfig{Modifiers: []Modifier{ModAlt}, Key: KeySpace})
	c.SetDoubleTap(DoubleTapConfig{Enabled: false, ThresholdMS: 250})

	reloaded := NewAt(path)
	assert.Equal(t, "en", reloaded.UILanguage())
	assert.False(t, reloaded.NotificationsEnabled())
	assert.Equal(t, HotkeyConfig{Modifiers: []Modifier{ModAlt}, Key: KeySpace}, reloaded.Hotkey())
	assert.Equal(t, DoubleTapConfig{Enabled: false, ThresholdMS: 250}, reloaded.DoubleTap())
}

func TestConfig_ClearedHotkeySurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	c := NewAt(path)
	c.SetHotkey(HotkeyConfig{})
	require.False(t, c.Hotkey().Enabled())

	reloaded := NewAt(path)
	assert.False(t, reloaded.Hotkey().Enabled(), "cleared hotkey must not revert to the default")
}

func TestConfig_HotkeyString(t *testing.T) {
	hk := HotkeyConfig{Modifiers: []Modifier{ModCtrl, ModShift}, Key: KeyP}
	assert.Equal(t, "ctrl+shift+p", hk.String())

	assert.Equal(t, "space", HotkeyConfig{Key: KeySpace}.String())
}

func TestConfig_DoubleTapThreshold(t *testing.T) {
	dt := DoubleTapConfig{Enabled: true, ThresholdMS: 250}
	assert.Equal(t, 250*time.Millisecond, dt.Threshold())
}

func TestConfig_SetDoubleTap_RejectsZeroThreshold(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	c.SetDoubleTap(DoubleTapConfig{Enabled: true, ThresholdMS: 0})
	assert.Equal(t, 400, c.DoubleTap().ThresholdMS)
}

func TestConfig_Callbacks(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "config.json"))

	var gotHotkey HotkeyConfig
	c.OnHotkeyChange(func(hk HotkeyConfig) { gotHotkey = hk })
	var gotTap DoubleTapConfig
	c.OnDoubleTapChange(func(dt DoubleTapConfig) { gotTap = dt })

	c.SetHotkey(HotkeyConfig{Modifiers: []Modifier{ModSuper}, Key: KeyV})
	c.SetDoubleTap(DoubleTapConfig{Enabled: false, ThresholdMS: 300})

	assert.Equal(t, KeyV, gotHotkey.Key)
	assert.False(t, gotTap.Enabled)
	assert.Equal(t, 300, gotTap.ThresholdMS)
}

func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	c := NewAt(filepath.Join(t.TempDir(), "missing", "config.json"))

	assert.Equal(t, "ru", c.UILanguage())
	assert.True(t, c.DoubleTap().Enabled)
}
