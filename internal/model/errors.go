package model

import "fmt"

// ValidationError — пустое имя или содержимое при добавлении/правке,
// либо ссылка на категорию, которой нет.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DuplicateNameError — попытка занять уже существующее имя категории.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("категория %q уже существует", e.Name)
}
