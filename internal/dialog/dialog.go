// Package dialog предоставляет GUI диалоги для подтверждений и ввода.
package dialog

import (
	"github.com/ncruces/zenity"
)

// AskName запрашивает у пользователя название (новой или переименуемой
// категории). Возвращает zenity.ErrCanceled если пользователь отменил.
func AskName(title, prompt, initial string) (string, error) {
	return zenity.Entry(prompt,
		zenity.Title(title),
		zenity.EntryText(initial),
	)
}

// Confirm показывает вопрос с кнопками подтверждения.
// Возвращает true если пользователь согласился.
func Confirm(title, message string) bool {
	err := zenity.Question(message,
		zenity.Title(title),
		zenity.QuestionIcon,
	)
	return err == nil
}

// ShowInfo показывает информационное сообщение.
func ShowInfo(title, message string) {
	zenity.Info(message, zenity.Title(title))
}

// ShowError показывает сообщение об ошибке.
func ShowError(title, message string) {
	zenity.Error(message, zenity.Title(title))
}
