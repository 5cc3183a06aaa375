package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shtamp/internal/store"
)

type saverStub struct {
	saves int
	err   error
}

func (s *saverStub) Save(*store.Document) error {
	s.saves++
	return s.err
}

func testDoc() *store.Document {
	return &store.Document{
		Version: store.CurrentVersion,
		Categories: []store.Category{
			{Name: "Email", Prompts: []store.Snippet{
				{Name: "Closing", Content: "Kind regards,\n\n"},
				{Name: "Intro", Content: "Hello!"},
			}, Expanded: true},
			{Name: "Code", Prompts: []store.Snippet{
				{Name: "Shrug", Content: `\_("/)_/`},
			}, Expanded: false},
		},
		Uncategorized: []store.Snippet{
			{Name: "Quick Question", Content: "Hi, I have a quick question: "},
		},
		UncategorizedExpanded: true,
	}
}

func newTree(t *testing.T) (*Tree, *store.Document, *saverStub) {
	t.Helper()
	doc := testDoc()
	s := &saverStub{}
	return New(doc, s), doc, s
}

func snippetNames(list []store.Snippet) []string {
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.Name
	}
	return names
}

func TestTree_CategoryNames_ReservedFirst(t *testing.T) {
	tr, _, _ := newTree(t)

	assert.Equal(t, []string{ReservedName, "Email", "Code"}, tr.CategoryNames())
}

func TestTree_AddCategory(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.AddCategory("Support"))
	assert.Equal(t, []string{ReservedName, "Email", "Code", "Support"}, tr.CategoryNames())
	assert.Equal(t, 1, s.saves)

	added := doc.Categories[2]
	assert.Equal(t, []store.Snippet{}, added.Prompts)
	assert.True(t, added.Expanded)
}

func TestTree_AddCategory_Duplicate(t *testing.T) {
	tr, doc, s := newTree(t)
	before := len(doc.Categories)

	err := tr.AddCategory("Email")
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Email", dup.Name)

	assert.Len(t, doc.Categories, before, "document must stay unchanged")
	assert.Zero(t, s.saves)
}

func TestTree_AddCategory_ReservedName(t *testing.T) {
	tr, _, s := newTree(t)

	var dup *DuplicateNameError
	require.ErrorAs(t, tr.AddCategory(ReservedName), &dup)
	assert.Zero(t, s.saves)
}

func TestTree_AddCategory_EmptyName(t *testing.T) {
	tr, _, s := newTree(t)

	var verr *ValidationError
	require.ErrorAs(t, tr.AddCategory(""), &verr)
	assert.Zero(t, s.saves)
}

func TestTree_RenameCategory(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.RenameCategory("Email", "Mail"))
	assert.Equal(t, []string{ReservedName, "Mail", "Code"}, tr.CategoryNames())
	// Prompts and their order survive the rename
	assert.Equal(t, []string{"Closing", "Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, 1, s.saves)
}

func TestTree_RenameCategory_NoopAndGuards(t *testing.T) {
	tr, _, s := newTree(t)

	require.NoError(t, tr.RenameCategory("Email", "Email"))
	require.NoError(t, tr.RenameCategory(ReservedName, "Basket"))
	require.NoError(t, tr.RenameCategory("Ghost", "Phantom"))
	assert.Zero(t, s.saves)

	var dup *DuplicateNameError
	require.ErrorAs(t, tr.RenameCategory("Email", "Code"), &dup)
	require.ErrorAs(t, tr.RenameCategory("Email", ReservedName), &dup)

	var verr *ValidationError
	require.ErrorAs(t, tr.RenameCategory("Email", ""), &verr)

	assert.Equal(t, []string{ReservedName, "Email", "Code"}, tr.CategoryNames())
	assert.Zero(t, s.saves)
}

func TestTree_DeleteCategory(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.DeleteCategory("Email"))

	assert.Equal(t, []string{ReservedName, "Code"}, tr.CategoryNames())
	// Prompts moved to the end of uncategorized, order preserved
	assert.Equal(t, []string{"Quick Question", "Closing", "Intro"}, snippetNames(doc.Uncategorized))
	assert.Equal(t, 1, s.saves)
}

func TestTree_DeleteCategory_Guards(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.DeleteCategory(ReservedName))
	require.NoError(t, tr.DeleteCategory("Ghost"))

	assert.Len(t, doc.Categories, 2)
	assert.Zero(t, s.saves)
}

func TestTree_AddSnippet(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.AddSnippet("Sig", "--\nAnna", "Email"))
	assert.Equal(t, []string{"Closing", "Intro", "Sig"}, snippetNames(doc.Categories[0].Prompts))

	require.NoError(t, tr.AddSnippet("Later", "ttyl", ReservedName))
	assert.Equal(t, []string{"Quick Question", "Later"}, snippetNames(doc.Uncategorized))

	assert.Equal(t, 2, s.saves)
}

func TestTree_AddSnippet_Validation(t *testing.T) {
	tr, doc, s := newTree(t)

	var verr *ValidationError
	require.ErrorAs(t, tr.AddSnippet("Sig", "", "Email"), &verr)
	require.ErrorAs(t, tr.AddSnippet("", "text", "Email"), &verr)
	require.ErrorAs(t, tr.AddSnippet("Sig", "text", "Ghost"), &verr)

	assert.Equal(t, []string{"Closing", "Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Zero(t, s.saves)
}

func TestTree_EditSnippet_InPlace(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.EditSnippet("Closing", "Email", "Closing v2", "Best,\n", "Email"))

	// Edited snippet loses its position and jumps to the end of the list
	assert.Equal(t, []string{"Intro", "Closing v2"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, "Best,\n", doc.Categories[0].Prompts[1].Content)
	assert.Equal(t, 1, s.saves)
}

func TestTree_EditSnippet_MovesBetweenCategories(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.EditSnippet("Closing", "Email", "Closing", "Kind regards,\n\n", ReservedName))

	assert.Equal(t, []string{"Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, []string{"Quick Question", "Closing"}, snippetNames(doc.Uncategorized))
	assert.Equal(t, 1, s.saves)
}

func TestTree_EditSnippet_ValidatesBeforeMutating(t *testing.T) {
	tr, doc, s := newTree(t)

	var verr *ValidationError
	require.ErrorAs(t, tr.EditSnippet("Closing", "Email", "", "x", "Email"), &verr)
	require.ErrorAs(t, tr.EditSnippet("Closing", "Email", "x", "", "Email"), &verr)
	require.ErrorAs(t, tr.EditSnippet("Closing", "Email", "x", "y", "Ghost"), &verr)

	assert.Equal(t, []string{"Closing", "Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Zero(t, s.saves)
}

func TestTree_EditSnippet_OldNotFound(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.EditSnippet("Ghost", "Email", "x", "y", "Email"))
	require.NoError(t, tr.EditSnippet("Closing", "Ghost", "x", "y", "Email"))

	assert.Equal(t, []string{"Closing", "Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Zero(t, s.saves)
}

func TestTree_DeleteSnippet(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.DeleteSnippet("Closing", "Email"))
	assert.Equal(t, []string{"Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, 1, s.saves)

	require.NoError(t, tr.DeleteSnippet("Ghost", "Email"))
	require.NoError(t, tr.DeleteSnippet("Intro", "Ghost"))
	assert.Equal(t, 1, s.saves)
}

func TestTree_DeleteSnippet_FirstMatchOnly(t *testing.T) {
	tr, doc, s := newTree(t)
	require.NoError(t, tr.AddSnippet("Intro", "second intro", "Email"))

	require.NoError(t, tr.DeleteSnippet("Intro", "Email"))

	// Only the first of the two same-named snippets is gone
	assert.Equal(t, []string{"Closing", "Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, "second intro", doc.Categories[0].Prompts[1].Content)
	assert.Equal(t, 2, s.saves)
}

func TestTree_MoveSnippet(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.MoveSnippet("Closing", "Email", "Code"))

	assert.Equal(t, []string{"Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, []string{"Shrug", "Closing"}, snippetNames(doc.Categories[1].Prompts))
	assert.Equal(t, 1, s.saves)
}

func TestTree_MoveSnippet_Noops(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.MoveSnippet("Ghost", "Email", "Code"))
	require.NoError(t, tr.MoveSnippet("Closing", "Ghost", "Code"))
	require.NoError(t, tr.MoveSnippet("Closing", "Email", "Ghost"))

	assert.Equal(t, []string{"Closing", "Intro"}, snippetNames(doc.Categories[0].Prompts))
	assert.Zero(t, s.saves)
}

func TestTree_SetExpansion(t *testing.T) {
	tr, doc, s := newTree(t)

	require.NoError(t, tr.SetExpansion("Email", false))
	assert.False(t, doc.Categories[0].Expanded)

	require.NoError(t, tr.SetExpansion(ReservedName, false))
	assert.False(t, doc.UncategorizedExpanded)

	require.NoError(t, tr.SetExpansion("Ghost", true))
	assert.Equal(t, 2, s.saves)
}

func TestTree_Snapshot(t *testing.T) {
	tr, doc, _ := newTree(t)

	views := tr.Snapshot()
	require.Len(t, views, 3)

	// User categories keep their order, the reserved bucket comes last
	assert.Equal(t, "Email", views[0].Name)
	assert.Equal(t, "Code", views[1].Name)
	assert.Equal(t, ReservedName, views[2].Name)
	assert.True(t, views[2].Reserved)
	assert.False(t, views[0].Reserved)
	assert.False(t, views[1].Expanded)

	// Deep copy: mutating the snapshot must not touch the document
	views[0].Snippets[0].Name = "hacked"
	assert.Equal(t, "Closing", doc.Categories[0].Prompts[0].Name)
}

func TestTree_Snippet_FirstMatch(t *testing.T) {
	tr, _, _ := newTree(t)
	require.NoError(t, tr.AddSnippet("Closing", "duplicate", "Email"))

	got, ok := tr.Snippet("Email", "Closing")
	require.True(t, ok)
	assert.Equal(t, "Kind regards,\n\n", got.Content)

	_, ok = tr.Snippet("Email", "Ghost")
	assert.False(t, ok)
	_, ok = tr.Snippet("Ghost", "Closing")
	assert.False(t, ok)
}

func TestTree_Snippets_ReturnsCopy(t *testing.T) {
	tr, doc, _ := newTree(t)

	list, ok := tr.Snippets("Email")
	require.True(t, ok)
	list[0].Name = "hacked"

	assert.Equal(t, "Closing", doc.Categories[0].Prompts[0].Name)

	_, ok = tr.Snippets("Ghost")
	assert.False(t, ok)
}

func TestTree_CommitFailure_KeepsMemoryMutation(t *testing.T) {
	tr, doc, s := newTree(t)
	s.err = assert.AnError

	notified := 0
	tr.OnChange(func() { notified++ })

	err := tr.AddSnippet("Sig", "text", "Email")
	require.ErrorIs(t, err, assert.AnError)

	// Memory and disk diverge until the next successful save
	assert.Equal(t, []string{"Closing", "Intro", "Sig"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, 1, notified, "observer runs even when the save fails")
}

func TestTree_OnChange_RunsAfterEveryMutation(t *testing.T) {
	tr, _, s := newTree(t)

	notified := 0
	tr.OnChange(func() { notified++ })

	require.NoError(t, tr.AddCategory("Support"))
	require.NoError(t, tr.AddSnippet("Sig", "text", "Support"))
	require.NoError(t, tr.SetExpansion("Support", false))
	require.NoError(t, tr.DeleteCategory("Support"))

	assert.Equal(t, 4, notified)
	assert.Equal(t, 4, s.saves)
}
