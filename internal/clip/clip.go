// Package clip кладёт текст в системный буфер обмена. Платформенная
// реализация выбирается сборочными тегами.
package clip

// Writer кладёт текст в буфер обмена.
type Writer interface {
	// Set заменяет содержимое буфера обмена текстом.
	Set(text string) error
	// Name возвращает имя механизма для сообщений об ошибках.
	Name() string
}

// New создаёт платформенный Writer.
func New() Writer {
	return newWriter()
}
