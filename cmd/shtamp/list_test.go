package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shtamp/internal/i18n"
	"shtamp/internal/model"
	"shtamp/internal/store"
)

func TestFormatTree(t *testing.T) {
	i18n.SetLanguage(i18n.RU)

	views := []model.CategoryView{
		{
			Name:     "Email",
			Expanded: true,
			Snippets: []store.Snippet{
				{Name: "Closing", Content: "Kind regards,\n\n"},
				{Name: "Intro", Content: "Hello,\n"},
			},
		},
		{
			Name: "Code",
		},
		{
			Name:     model.ReservedName,
			Reserved: true,
			Snippets: []store.Snippet{
				{Name: "Quick Question", Content: "Hi, I have a quick question: "},
			},
		},
	}

	want := "Email (2)\n" +
		"  Closing\n" +
		"  Intro\n" +
		"Code (0)\n" +
		"Без категории (1)\n" +
		"  Quick Question\n"
	assert.Equal(t, want, formatTree(views))
}

func TestFormatTree_Empty(t *testing.T) {
	assert.Equal(t, "", formatTree(nil))
}

func TestFindSnippet(t *testing.T) {
	doc := &store.Document{
		Version: store.CurrentVersion,
		Categories: []store.Category{
			{Name: "Email", Prompts: []store.Snippet{
				{Name: "Closing", Content: "Kind regards,\n\n"},
			}, Expanded: true},
		},
		Uncategorized: []store.Snippet{
			{Name: "Closing", Content: "Bye"},
			{Name: "Quick Question", Content: "Hi, I have a quick question: "},
		},
		UncategorizedExpanded: true,
	}
	tree := model.New(doc, nil)

	// Без категории берётся первое совпадение в порядке отображения.
	snip, err := findSnippet(tree, "Closing", "")
	assert.NoError(t, err)
	assert.Equal(t, "Kind regards,\n\n", snip.Content)

	// Категория ограничивает поиск.
	snip, err = findSnippet(tree, "Closing", model.ReservedName)
	assert.NoError(t, err)
	assert.Equal(t, "Bye", snip.Content)

	_, err = findSnippet(tree, "Closing", "Code")
	assert.Error(t, err)

	_, err = findSnippet(tree, "Nope", "")
	assert.Error(t, err)
}
