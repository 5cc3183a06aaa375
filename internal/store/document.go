// Package store отвечает за чтение, миграцию и запись документа со сниппетами.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// CurrentVersion — текущая версия схемы документа.
const CurrentVersion = 2

const (
	appDirName = "Shtamp"
	fileName   = "prompts.json"
)

// Snippet — именованный фрагмент текста для вставки.
type Snippet struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Category — именованная упорядоченная группа сниппетов. Имя служит
// идентификатором: отдельных id у категорий нет.
type Category struct {
	Name     string    `json:"name"`
	Prompts  []Snippet `json:"prompts"`
	Expanded bool      `json:"expanded"`
}

// Document — полный сохраняемый документ: категории, нераспределённые
// сниппеты и флаги раскрытия. Порядок элементов значим и равен порядку
// отображения.
type Document struct {
	Version               int        `json:"version"`
	Categories            []Category `json:"categories"`
	Uncategorized         []Snippet  `json:"uncategorized"`
	UncategorizedExpanded bool       `json:"uncategorized_expanded"`
}

// Default возвращает документ, создаваемый при первом запуске.
func Default() *Document {
	return &Document{
		Version: CurrentVersion,
		Categories: []Category{
			{
				Name: "Email",
				Prompts: []Snippet{
					{Name: "Closing", Content: "Kind regards,\n\n"},
				},
				Expanded: true,
			},
		},
		Uncategorized: []Snippet{
			{Name: "Quick Question", Content: "Hi, I have a quick question: "},
		},
		UncategorizedExpanded: true,
	}
}

// Empty возвращает пустой документ текущей версии. Используется как
// запасной вариант, когда файл на диске не удалось прочитать.
func Empty() *Document {
	return &Document{
		Version:               CurrentVersion,
		Categories:            []Category{},
		Uncategorized:         []Snippet{},
		UncategorizedExpanded: true,
	}
}

// DefaultPath возвращает путь к файлу сниппетов в каталоге настроек
// пользователя.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("каталог настроек пользователя: %w", err)
	}
	return filepath.Join(dir, appDirName, fileName), nil
}
