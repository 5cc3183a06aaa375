// Package i18n provides internationalization support.
package i18n

import "sync"

// Language represents a UI language.
type Language string

const (
	RU Language = "ru"
	EN Language = "en"
)

var (
	mu      sync.RWMutex
	current = RU // Default language
)

// Translations for all supported languages.
var translations = map[Language]map[string]string{
	RU: {
		// App
		"app_name":    "Shtamp",
		"app_tooltip": "Shtamp - быстрая вставка сниппетов",

		// Tray menu
		"tray_ready":              "Готов к работе",
		"tray_window_open":        "Окно открыто",
		"tray_open":               "Открыть сниппеты",
		"tray_open_hint":          "Показать окно со сниппетами",
		"tray_notifications":      "Уведомления",
		"tray_notifications_hint": "Показывать уведомления",
		"tray_autostart":          "Автозапуск",
		"tray_autostart_hint":     "Запускать при входе в систему",
		"tray_settings":           "Настройки...",
		"tray_settings_hint":      "Горячая клавиша, язык, уведомления",
		"tray_quit":               "Выход",
		"tray_quit_hint":          "Закрыть приложение",

		// Notifications
		"notify_pasted": "Вставлено",
		"notify_copied": "Скопировано",
		"notify_error":  "Ошибка",
		"notify_ready":  "Shtamp готов к работе",

		// Picker window
		"picker_title":         "Сниппеты",
		"picker_uncategorized": "Без категории",
		"picker_empty":         "Нет сниппетов",
		"picker_hint":          "Enter - вставить, Ctrl+Enter - скопировать, Esc - скрыть",
		"picker_add":           "Добавить",
		"picker_edit":          "Изменить",
		"picker_delete":        "Удалить",
		"picker_new_category":  "Новая категория",

		// Editor window
		"editor_title_add":  "Новый сниппет",
		"editor_title_edit": "Изменение сниппета",
		"editor_name":       "Название:",
		"editor_content":    "Текст:",
		"editor_category":   "Категория:",
		"editor_save":       "Сохранить",
		"editor_cancel":     "Отмена",

		// Settings window
		"settings_title":                "Настройки",
		"settings_ui_language":          "Язык интерфейса",
		"settings_notifications":        "Уведомления",
		"settings_notifications_enable": "Показывать уведомления",
		"settings_notifications_hint":   "Сообщение после вставки сниппета",
		"settings_double_tap":           "Двойной Shift",
		"settings_double_tap_enable":    "Открывать окно двойным нажатием Shift",
		"settings_double_tap_threshold": "Интервал (мс):",
		"settings_hotkey":               "Горячая клавиша",
		"settings_hotkey_edit":          "Изменить",
		"settings_hotkey_clear":         "Очистить",
		"settings_hotkey_not_set":       "Не задана",
		"settings_hotkey_prompt":        "Нажмите комбинацию клавиш...",
		"settings_hotkey_cancel":        "Отмена",
		"settings_apply":                "Применить",
		"settings_cancel":               "Отмена",

		// Dialogs
		"dialog_add_category":     "Новая категория",
		"dialog_rename_category":  "Переименование категории",
		"dialog_category_prompt":  "Название категории:",
		"confirm_delete_snippet":  "Удалить сниппет «%s»?",
		"confirm_delete_category": "Удалить категорию «%s»? Сниппеты будут перенесены в «Без категории».",

		// Errors
		"error_store_load":      "Не удалось загрузить сниппеты",
		"error_store_save":      "Не удалось сохранить сниппеты",
		"error_insert":          "Ошибка вставки",
		"error_clipboard":       "Ошибка копирования в буфер обмена",
		"error_hotkey_register": "Не удалось зарегистрировать горячую клавишу",
		"error_shift_listener":  "Не удалось запустить отслеживание Shift",
	},

	EN: {
		// App
		"app_name":    "Shtamp",
		"app_tooltip": "Shtamp - snippet launcher",

		// Tray menu
		"tray_ready":              "Ready",
		"tray_window_open":        "Window open",
		"tray_open":               "Open snippets",
		"tray_open_hint":          "Show the snippet window",
		"tray_notifications":      "Notifications",
		"tray_notifications_hint": "Show notifications",
		"tray_autostart":          "Start at login",
		"tray_autostart_hint":     "Launch when you log in",
		"tray_settings":           "Settings...",
		"tray_settings_hint":      "Hotkey, language, notifications",
		"tray_quit":               "Quit",
		"tray_quit_hint":          "Close application",

		// Notifications
		"notify_pasted": "Pasted",
		"notify_copied": "Copied",
		"notify_error":  "Error",
		"notify_ready":  "Shtamp is ready",

		// Picker window
		"picker_title":         "Snippets",
		"picker_uncategorized": "Uncategorized",
		"picker_empty":         "No snippets yet",
		"picker_hint":          "Enter to paste, Ctrl+Enter to copy, Esc to hide",
		"picker_add":           "Add",
		"picker_edit":          "Edit",
		"picker_delete":        "Delete",
		"picker_new_category":  "New category",

		// Editor window
		"editor_title_add":  "New snippet",
		"editor_title_edit": "Edit snippet",
		"editor_name":       "Name:",
		"editor_content":    "Text:",
		"editor_category":   "Category:",
		"editor_save":       "Save",
		"editor_cancel":     "Cancel",

		// Settings window
		"settings_title":                "Settings",
		"settings_ui_language":          "Interface language",
		"settings_notifications":        "Notifications",
		"settings_notifications_enable": "Show notifications",
		"settings_notifications_hint":   "Message after a snippet is pasted",
		"settings_double_tap":           "Double Shift",
		"settings_double_tap_enable":    "Open the window with a double Shift tap",
		"settings_double_tap_threshold": "Interval (ms):",
		"settings_hotkey":               "Hotkey",
		"settings_hotkey_edit":          "Edit",
		"settings_hotkey_clear":         "Clear",
		"settings_hotkey_not_set":       "Not set",
		"settings_hotkey_prompt":        "Press a key combination...",
		"settings_hotkey_cancel":        "Cancel",
		"settings_apply":                "Apply",
		"settings_cancel":               "Cancel",

		// Dialogs
		"dialog_add_category":     "New category",
		"dialog_rename_category":  "Rename category",
		"dialog_category_prompt":  "Category name:",
		"confirm_delete_snippet":  "Delete snippet \"%s\"?",
		"confirm_delete_category": "Delete category \"%s\"? Its snippets move to Uncategorized.",

		// Errors
		"error_store_load":      "Could not load snippets",
		"error_store_save":      "Could not save snippets",
		"error_insert":          "Paste error",
		"error_clipboard":       "Clipboard copy error",
		"error_hotkey_register": "Could not register hotkey",
		"error_shift_listener":  "Could not start the Shift listener",
	},
}

// T returns the translation for the given key.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if strings, ok := translations[current]; ok {
		if s, ok := strings[key]; ok {
			return s
		}
	}
	// Fallback to key itself
	return key
}

// SetLanguage sets the current UI language.
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	current = lang
}

// GetLanguage returns the current UI language.
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLanguages returns list of supported languages.
func AvailableLanguages() []Language {
	return []Language{RU, EN}
}

// LanguageName returns display name for a language.
func LanguageName(lang Language) string {
	switch lang {
	case RU:
		return "Русский"
	case EN:
		return "English"
	default:
		return string(lang)
	}
}
