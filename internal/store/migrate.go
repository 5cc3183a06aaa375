package store

import (
	"bytes"
	"encoding/json"
	"errors"
)

// rawCategory — категория в том виде, в каком она лежит на диске:
// отсутствующие поля остаются nil и заполняются миграцией.
type rawCategory struct {
	Name     string    `json:"name"`
	Prompts  []Snippet `json:"prompts"`
	Expanded *bool     `json:"expanded"`
}

// rawDocument — документ до миграции.
type rawDocument struct {
	Version               int           `json:"version"`
	Categories            []rawCategory `json:"categories"`
	Uncategorized         []Snippet     `json:"uncategorized"`
	UncategorizedExpanded *bool         `json:"uncategorized_expanded"`
}

// decode разбирает содержимое файла и приводит его к текущей версии схемы.
// Поддерживаются две формы: документ с категориями и устаревший плоский
// массив сниппетов, существовавший до введения версий.
func decode(data []byte) (*Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, errors.New("файл пуст")
	}

	switch trimmed[0] {
	case '[':
		var legacy []Snippet
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, err
		}
		return migrateLegacy(legacy), nil
	case '{':
		var raw rawDocument
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, err
		}
		return migrate(&raw), nil
	default:
		return nil, errors.New("ожидался объект или массив JSON")
	}
}

// migrate заполняет значения по умолчанию для полей, появившихся в более
// поздних версиях схемы: отсутствующие списки становятся пустыми, флаги
// раскрытия — true. Миграция уже актуального документа ничего не меняет.
func migrate(raw *rawDocument) *Document {
	doc := &Document{
		Version:               CurrentVersion,
		Categories:            make([]Category, 0, len(raw.Categories)),
		Uncategorized:         raw.Uncategorized,
		UncategorizedExpanded: true,
	}
	if raw.UncategorizedExpanded != nil {
		doc.UncategorizedExpanded = *raw.UncategorizedExpanded
	}
	if doc.Uncategorized == nil {
		doc.Uncategorized = []Snippet{}
	}
	for _, rc := range raw.Categories {
		c := Category{Name: rc.Name, Prompts: rc.Prompts, Expanded: true}
		if rc.Expanded != nil {
			c.Expanded = *rc.Expanded
		}
		if c.Prompts == nil {
			c.Prompts = []Snippet{}
		}
		doc.Categories = append(doc.Categories, c)
	}
	return doc
}

// migrateLegacy оборачивает плоский список сниппетов в документ текущей
// версии: всё содержимое попадает в нераспределённые.
func migrateLegacy(prompts []Snippet) *Document {
	if prompts == nil {
		prompts = []Snippet{}
	}
	return &Document{
		Version:               CurrentVersion,
		Categories:            []Category{},
		Uncategorized:         prompts,
		UncategorizedExpanded: true,
	}
}
