package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shtamp/internal/store"
)

func reorderDoc() *store.Document {
	return &store.Document{
		Version: store.CurrentVersion,
		Categories: []store.Category{
			{Name: "List", Prompts: []store.Snippet{
				{Name: "A", Content: "a"},
				{Name: "B", Content: "b"},
				{Name: "C", Content: "c"},
				{Name: "D", Content: "d"},
			}, Expanded: true},
		},
		Uncategorized:         []store.Snippet{},
		UncategorizedExpanded: true,
	}
}

func TestMoveTo(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"later_to_earlier", 3, 1, []string{"a", "d", "b", "c"}},
		{"earlier_to_later", 0, 2, []string{"b", "a", "c", "d"}},
		// Dropping onto the immediate next neighbor reinserts at the same slot
		{"onto_next_neighbor", 1, 2, []string{"a", "b", "c", "d"}},
		{"onto_previous_neighbor", 2, 1, []string{"a", "c", "b", "d"}},
		{"to_head", 2, 0, []string{"c", "a", "b", "d"}},
		{"to_tail", 0, 3, []string{"b", "c", "a", "d"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list := []string{"a", "b", "c", "d"}
			moveTo(&list, tc.from, tc.to)
			assert.Equal(t, tc.want, list)
		})
	}
}

func TestTree_ReorderSnippet_DraggedLandsBeforeTarget(t *testing.T) {
	doc := reorderDoc()
	s := &saverStub{}
	tr := New(doc, s)

	// Dragging B onto D: B leaves index 1 and takes D's post-removal slot
	require.NoError(t, tr.ReorderSnippet("List", "B", "D"))
	assert.Equal(t, []string{"A", "C", "B", "D"}, snippetNames(doc.Categories[0].Prompts))
	assert.Equal(t, 1, s.saves)
}

func TestTree_ReorderSnippet_DoubleApplyIsTwoTranspositions(t *testing.T) {
	doc := reorderDoc()
	tr := New(doc, &saverStub{})

	require.NoError(t, tr.ReorderSnippet("List", "B", "D"))
	require.NoError(t, tr.ReorderSnippet("List", "D", "B"))

	// [A B C D] -> [A C B D] -> [A C D B]: exactly two adjacent swaps
	assert.Equal(t, []string{"A", "C", "D", "B"}, snippetNames(doc.Categories[0].Prompts))
}

func TestTree_ReorderSnippet_EarlierDirection(t *testing.T) {
	doc := reorderDoc()
	tr := New(doc, &saverStub{})

	// Dragging D onto B: D is inserted at B's index, pushing B down
	require.NoError(t, tr.ReorderSnippet("List", "D", "B"))
	assert.Equal(t, []string{"A", "D", "B", "C"}, snippetNames(doc.Categories[0].Prompts))
}

func TestTree_ReorderSnippet_Noops(t *testing.T) {
	doc := reorderDoc()
	s := &saverStub{}
	tr := New(doc, s)

	require.NoError(t, tr.ReorderSnippet("List", "B", "B"))
	require.NoError(t, tr.ReorderSnippet("List", "Ghost", "B"))
	require.NoError(t, tr.ReorderSnippet("List", "B", "Ghost"))
	require.NoError(t, tr.ReorderSnippet("Ghost", "B", "D"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, snippetNames(doc.Categories[0].Prompts))
	assert.Zero(t, s.saves)
}

func TestTree_ReorderSnippet_Uncategorized(t *testing.T) {
	doc := reorderDoc()
	doc.Uncategorized = []store.Snippet{
		{Name: "X", Content: "x"},
		{Name: "Y", Content: "y"},
		{Name: "Z", Content: "z"},
	}
	tr := New(doc, &saverStub{})

	require.NoError(t, tr.ReorderSnippet(ReservedName, "Z", "X"))
	assert.Equal(t, []string{"Z", "X", "Y"}, snippetNames(doc.Uncategorized))
}

func TestTree_ReorderCategory(t *testing.T) {
	doc := &store.Document{
		Version: store.CurrentVersion,
		Categories: []store.Category{
			{Name: "One", Prompts: []store.Snippet{}, Expanded: true},
			{Name: "Two", Prompts: []store.Snippet{}, Expanded: true},
			{Name: "Three", Prompts: []store.Snippet{}, Expanded: true},
		},
		Uncategorized:         []store.Snippet{},
		UncategorizedExpanded: true,
	}
	s := &saverStub{}
	tr := New(doc, s)

	require.NoError(t, tr.ReorderCategory("Three", "One"))
	assert.Equal(t, []string{ReservedName, "Three", "One", "Two"}, tr.CategoryNames())
	assert.Equal(t, 1, s.saves)
}

func TestTree_ReorderCategory_ReservedNeverParticipates(t *testing.T) {
	doc := reorderDoc()
	s := &saverStub{}
	tr := New(doc, s)

	require.NoError(t, tr.ReorderCategory(ReservedName, "List"))
	require.NoError(t, tr.ReorderCategory("List", ReservedName))

	assert.Equal(t, []string{ReservedName, "List"}, tr.CategoryNames())
	assert.Zero(t, s.saves)
}
