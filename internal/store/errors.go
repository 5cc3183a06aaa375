package store

import "fmt"

// FormatError означает, что содержимое файла сниппетов не удалось
// разобрать как документ ни текущей, ни устаревшей формы.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("некорректный файл сниппетов %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
