// Package inject вставляет текст в активное окно: кладёт его в буфер
// обмена и эмулирует вставку с клавиатуры.
package inject

import (
	"fmt"

	"shtamp/internal/clip"
)

// Error — ошибка вставки: нет нужной утилиты или она завершилась
// неудачно. Показывается пользователю, процесс продолжает работать.
type Error struct {
	Tool string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("вставка через %s: %v", e.Tool, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Injector вставляет текст в текущее активное поле ввода.
type Injector interface {
	// Inject кладёт текст в буфер обмена и вставляет его нажатием.
	Inject(text string) error
}

// New создаёт платформенный Injector.
func New() Injector {
	return newInjector(clip.New())
}
