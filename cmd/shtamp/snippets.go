package main

import (
	"fmt"

	"shtamp/internal/config"
	"shtamp/internal/i18n"
	"shtamp/internal/model"
	"shtamp/internal/store"
)

// loadTree читает файл сниппетов и строит дерево. Заодно выставляет
// язык интерфейса из конфига, чтобы вывод совпадал с приложением.
func loadTree() (*model.Tree, error) {
	if uiLang := config.New().UILanguage(); uiLang != "" {
		i18n.SetLanguage(i18n.Language(uiLang))
	}

	path, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}
	st := store.New(path)
	doc, err := st.Load()
	if err != nil {
		return nil, err
	}
	return model.New(doc, st), nil
}

// findSnippet ищет первый сниппет с данным именем в порядке
// отображения. Непустая категория ограничивает поиск ею.
func findSnippet(tree *model.Tree, name, category string) (store.Snippet, error) {
	for _, view := range tree.Snapshot() {
		if category != "" && view.Name != category {
			continue
		}
		for _, s := range view.Snippets {
			if s.Name == name {
				return s, nil
			}
		}
	}
	if category != "" {
		return store.Snippet{}, fmt.Errorf("сниппет %q не найден в категории %q", name, category)
	}
	return store.Snippet{}, fmt.Errorf("сниппет %q не найден", name)
}
