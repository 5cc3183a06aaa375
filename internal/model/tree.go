// Package model реализует дерево категорий и сниппетов поверх документа.
// Все структурные запросы и изменения идут через него: представление
// никогда не трогает документ напрямую.
package model

import (
	"slices"

	"shtamp/internal/store"
)

// ReservedName — имя виртуальной категории для нераспределённых сниппетов.
// Она не входит в categories документа, её нельзя переименовать, удалить
// или переставить.
const ReservedName = "Uncategorized"

// Saver сохраняет документ после каждой мутации.
type Saver interface {
	Save(*store.Document) error
}

// SnippetStore — полный набор операций над деревом категорий и сниппетов.
// Каждая мутация заканчивается сохранением документа и извещением
// наблюдателя.
type SnippetStore interface {
	CategoryNames() []string
	Snippets(category string) ([]store.Snippet, bool)
	Snippet(category, name string) (store.Snippet, bool)
	Snapshot() []CategoryView

	AddCategory(name string) error
	RenameCategory(oldName, newName string) error
	DeleteCategory(name string) error
	AddSnippet(name, content, category string) error
	EditSnippet(oldName, oldCategory, newName, newContent, newCategory string) error
	DeleteSnippet(name, category string) error
	MoveSnippet(name, fromCategory, toCategory string) error
	ReorderSnippet(category, draggedName, targetName string) error
	ReorderCategory(draggedName, targetName string) error
	SetExpansion(category string, expanded bool) error
}

// CategoryView — копия категории для отрисовки.
type CategoryView struct {
	Name     string
	Expanded bool
	Reserved bool
	Snippets []store.Snippet
}

// Tree реализует SnippetStore поверх документа. Операции рассчитаны на
// вызовы с одной горутины-владельца, см. internal/app.
type Tree struct {
	doc      *store.Document
	saver    Saver
	onChange func()
}

// New создаёт дерево над документом.
func New(doc *store.Document, saver Saver) *Tree {
	return &Tree{doc: doc, saver: saver}
}

// OnChange регистрирует наблюдателя, вызываемого после каждой мутации.
func (t *Tree) OnChange(fn func()) {
	t.onChange = fn
}

// commit сохраняет документ и извещает наблюдателя. Неудачное сохранение
// не откатывает изменение в памяти: документ и файл расходятся до
// следующего успешного сохранения, ошибка возвращается для показа.
func (t *Tree) commit() error {
	err := t.saver.Save(t.doc)
	if t.onChange != nil {
		t.onChange()
	}
	return err
}

// findList резолвит имя категории в её список сниппетов.
// Зарезервированное имя указывает на нераспределённые.
func (t *Tree) findList(category string) *[]store.Snippet {
	if category == ReservedName {
		return &t.doc.Uncategorized
	}
	for i := range t.doc.Categories {
		if t.doc.Categories[i].Name == category {
			return &t.doc.Categories[i].Prompts
		}
	}
	return nil
}

// indexByName возвращает индекс первого сниппета с данным именем.
// При дублях внутри списка адресуется только первый — это сохранённое
// поведение, а не недосмотр.
func indexByName(list []store.Snippet, name string) int {
	for i := range list {
		if list[i].Name == name {
			return i
		}
	}
	return -1
}

// moveTo переставляет элемент с позиции from на позицию элемента to,
// обе позиции считаются до удаления: перетаскиваемый элемент встаёт
// прямо перед целевым.
func moveTo[T any](list *[]T, from, to int) {
	item := (*list)[from]
	*list = slices.Delete(*list, from, from+1)
	if from < to {
		to--
	}
	*list = slices.Insert(*list, to, item)
}

// CategoryNames возвращает имена всех категорий: сначала
// зарезервированную, затем пользовательские в их порядке.
func (t *Tree) CategoryNames() []string {
	names := make([]string, 0, len(t.doc.Categories)+1)
	names = append(names, ReservedName)
	for i := range t.doc.Categories {
		names = append(names, t.doc.Categories[i].Name)
	}
	return names
}

// Snippets возвращает копию списка сниппетов категории.
func (t *Tree) Snippets(category string) ([]store.Snippet, bool) {
	list := t.findList(category)
	if list == nil {
		return nil, false
	}
	out := make([]store.Snippet, len(*list))
	copy(out, *list)
	return out, true
}

// Snippet возвращает первый сниппет с данным именем в категории.
func (t *Tree) Snippet(category, name string) (store.Snippet, bool) {
	list := t.findList(category)
	if list == nil {
		return store.Snippet{}, false
	}
	idx := indexByName(*list, name)
	if idx < 0 {
		return store.Snippet{}, false
	}
	return (*list)[idx], true
}

// Snapshot возвращает глубокую копию дерева для отрисовки:
// пользовательские категории в их порядке, зарезервированная — последней.
func (t *Tree) Snapshot() []CategoryView {
	views := make([]CategoryView, 0, len(t.doc.Categories)+1)
	for i := range t.doc.Categories {
		c := &t.doc.Categories[i]
		views = append(views, CategoryView{
			Name:     c.Name,
			Expanded: c.Expanded,
			Snippets: copySnippets(c.Prompts),
		})
	}
	views = append(views, CategoryView{
		Name:     ReservedName,
		Expanded: t.doc.UncategorizedExpanded,
		Reserved: true,
		Snippets: copySnippets(t.doc.Uncategorized),
	})
	return views
}

func copySnippets(list []store.Snippet) []store.Snippet {
	out := make([]store.Snippet, len(list))
	copy(out, list)
	return out
}

// AddCategory добавляет пустую раскрытую категорию в конец списка.
func (t *Tree) AddCategory(name string) error {
	if name == "" {
		return &ValidationError{Reason: "имя категории не может быть пустым"}
	}
	if slices.Contains(t.CategoryNames(), name) {
		return &DuplicateNameError{Name: name}
	}
	t.doc.Categories = append(t.doc.Categories, store.Category{
		Name:     name,
		Prompts:  []store.Snippet{},
		Expanded: true,
	})
	return t.commit()
}

// RenameCategory переименовывает категорию, сохраняя её сниппеты и место.
// Зарезервированную категорию переименовать нельзя.
func (t *Tree) RenameCategory(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	if oldName == ReservedName {
		return nil
	}
	if newName == "" {
		return &ValidationError{Reason: "имя категории не может быть пустым"}
	}
	if slices.Contains(t.CategoryNames(), newName) {
		return &DuplicateNameError{Name: newName}
	}
	for i := range t.doc.Categories {
		if t.doc.Categories[i].Name == oldName {
			t.doc.Categories[i].Name = newName
			return t.commit()
		}
	}
	return nil
}

// DeleteCategory удаляет категорию, перенося её сниппеты в конец
// нераспределённых с сохранением порядка. Зарезервированную категорию
// удалить нельзя.
func (t *Tree) DeleteCategory(name string) error {
	if name == ReservedName {
		return nil
	}
	for i := range t.doc.Categories {
		if t.doc.Categories[i].Name == name {
			t.doc.Uncategorized = append(t.doc.Uncategorized, t.doc.Categories[i].Prompts...)
			t.doc.Categories = slices.Delete(t.doc.Categories, i, i+1)
			return t.commit()
		}
	}
	return nil
}

// AddSnippet добавляет сниппет в конец списка категории.
func (t *Tree) AddSnippet(name, content, category string) error {
	if name == "" {
		return &ValidationError{Reason: "имя сниппета не может быть пустым"}
	}
	if content == "" {
		return &ValidationError{Reason: "содержимое сниппета не может быть пустым"}
	}
	list := t.findList(category)
	if list == nil {
		return &ValidationError{Reason: "категория не найдена: " + category}
	}
	*list = append(*list, store.Snippet{Name: name, Content: content})
	return t.commit()
}

// EditSnippet заменяет первый сниппет с именем oldName в oldCategory
// новым содержимым и добавляет его в конец списка newCategory. Так же
// выполняется перенос между категориями; позиция сбрасывается в конец
// даже при правке на месте.
func (t *Tree) EditSnippet(oldName, oldCategory, newName, newContent, newCategory string) error {
	if newName == "" {
		return &ValidationError{Reason: "имя сниппета не может быть пустым"}
	}
	if newContent == "" {
		return &ValidationError{Reason: "содержимое сниппета не может быть пустым"}
	}
	dst := t.findList(newCategory)
	if dst == nil {
		return &ValidationError{Reason: "категория не найдена: " + newCategory}
	}
	src := t.findList(oldCategory)
	if src == nil {
		return nil
	}
	idx := indexByName(*src, oldName)
	if idx < 0 {
		return nil
	}
	*src = slices.Delete(*src, idx, idx+1)
	*dst = append(*dst, store.Snippet{Name: newName, Content: newContent})
	return t.commit()
}

// DeleteSnippet удаляет первый сниппет с данным именем.
func (t *Tree) DeleteSnippet(name, category string) error {
	list := t.findList(category)
	if list == nil {
		return nil
	}
	idx := indexByName(*list, name)
	if idx < 0 {
		return nil
	}
	*list = slices.Delete(*list, idx, idx+1)
	return t.commit()
}

// MoveSnippet переносит первый сниппет с данным именем в конец другой
// категории. Владение эксклюзивно: сниппет никогда не дублируется.
func (t *Tree) MoveSnippet(name, fromCategory, toCategory string) error {
	src := t.findList(fromCategory)
	dst := t.findList(toCategory)
	if src == nil || dst == nil {
		return nil
	}
	idx := indexByName(*src, name)
	if idx < 0 {
		return nil
	}
	moved := (*src)[idx]
	*src = slices.Delete(*src, idx, idx+1)
	*dst = append(*dst, moved)
	return t.commit()
}

// ReorderSnippet ставит перетаскиваемый сниппет перед целевым внутри
// одной категории. Имена резолвятся в индексы только здесь, сама
// перестановка индексная.
func (t *Tree) ReorderSnippet(category, draggedName, targetName string) error {
	list := t.findList(category)
	if list == nil {
		return nil
	}
	from := indexByName(*list, draggedName)
	to := indexByName(*list, targetName)
	if from < 0 || to < 0 || from == to {
		return nil
	}
	moveTo(list, from, to)
	return t.commit()
}

// ReorderCategory ставит перетаскиваемую категорию перед целевой.
// Зарезервированная категория не входит в список и в перестановке
// участвовать не может.
func (t *Tree) ReorderCategory(draggedName, targetName string) error {
	from := t.indexCategory(draggedName)
	to := t.indexCategory(targetName)
	if from < 0 || to < 0 || from == to {
		return nil
	}
	moveTo(&t.doc.Categories, from, to)
	return t.commit()
}

func (t *Tree) indexCategory(name string) int {
	for i := range t.doc.Categories {
		if t.doc.Categories[i].Name == name {
			return i
		}
	}
	return -1
}

// SetExpansion запоминает раскрытость категории. Структуру дерева не
// меняет, но сохраняется, чтобы пережить перезапуск.
func (t *Tree) SetExpansion(category string, expanded bool) error {
	if category == ReservedName {
		t.doc.UncategorizedExpanded = expanded
		return t.commit()
	}
	for i := range t.doc.Categories {
		if t.doc.Categories[i].Name == category {
			t.doc.Categories[i].Expanded = expanded
			return t.commit()
		}
	}
	return nil
}
