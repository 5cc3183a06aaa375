package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shtamp/internal/model"
	"shtamp/internal/store"
)

func testViews() []model.CategoryView {
	return []model.CategoryView{
		{
			Name:     "Email",
			Expanded: true,
			Snippets: []store.Snippet{
				{Name: "Closing", Content: "Kind regards,\n\n"},
				{Name: "Intro", Content: "Hello,\n"},
			},
		},
		{
			Name:     "Code",
			Expanded: false,
			Snippets: []store.Snippet{
				{Name: "Shrug", Content: `¯\_(ツ)_/¯`},
			},
		},
		{
			Name:     model.ReservedName,
			Expanded: true,
			Reserved: true,
			Snippets: []store.Snippet{
				{Name: "Quick Question", Content: "Hi, I have a quick question: "},
			},
		},
	}
}

func TestFlatten_MixedExpansion(t *testing.T) {
	rows := flatten(testViews())

	// Collapsed Code contributes only its header.
	require.Len(t, rows, 6)

	assert.Equal(t, rowCategory, rows[0].kind)
	assert.Equal(t, "Email", rows[0].category)
	assert.Equal(t, 2, rows[0].count)
	assert.True(t, rows[0].expanded)

	assert.Equal(t, rowSnippet, rows[1].kind)
	assert.Equal(t, "Closing", rows[1].name)
	assert.Equal(t, "Email", rows[1].category)

	assert.Equal(t, rowSnippet, rows[2].kind)
	assert.Equal(t, "Intro", rows[2].name)

	assert.Equal(t, rowCategory, rows[3].kind)
	assert.Equal(t, "Code", rows[3].category)
	assert.Equal(t, 1, rows[3].count)
	assert.False(t, rows[3].expanded)

	assert.Equal(t, rowCategory, rows[4].kind)
	assert.True(t, rows[4].reserved)

	assert.Equal(t, rowSnippet, rows[5].kind)
	assert.Equal(t, "Quick Question", rows[5].name)
}

func TestFlatten_CollapsedReservedHidesSnippets(t *testing.T) {
	views := testViews()
	views[2].Expanded = false

	rows := flatten(views)

	require.Len(t, rows, 5)
	last := rows[len(rows)-1]
	assert.Equal(t, rowCategory, last.kind)
	assert.True(t, last.reserved)
	assert.Equal(t, 1, last.count)
}

func TestRowKey_Unique(t *testing.T) {
	rows := flatten(testViews())

	seen := make(map[string]bool)
	for _, r := range rows {
		assert.False(t, seen[r.key()], "duplicate key %q", r.key())
		seen[r.key()] = true
	}

	// Same snippet name in different categories keeps distinct keys.
	a := row{kind: rowSnippet, category: "Email", name: "Closing"}
	b := row{kind: rowSnippet, category: "Code", name: "Closing"}
	assert.NotEqual(t, a.key(), b.key())
}

func TestClampSelection(t *testing.T) {
	rows := flatten(testViews())

	assert.Equal(t, 0, clampSelection(nil, 3))
	assert.Equal(t, 0, clampSelection(rows, -1))
	assert.Equal(t, len(rows)-1, clampSelection(rows, 99))
	assert.Equal(t, 2, clampSelection(rows, 2))
}

func TestReorderUp_Snippet(t *testing.T) {
	rows := flatten(testViews())

	// Intro (index 2) moves above Closing.
	op, ok := reorderUp(rows, 2)
	require.True(t, ok)
	assert.False(t, op.category)
	assert.Equal(t, "Email", op.inCat)
	assert.Equal(t, "Intro", op.dragged)
	assert.Equal(t, "Closing", op.target)

	// Closing (index 1) sits right under its header, nowhere to go.
	_, ok = reorderUp(rows, 1)
	assert.False(t, ok)
}

func TestReorderDown_Snippet(t *testing.T) {
	rows := flatten(testViews())

	// Moving Closing down reinserts Intro in front of it.
	op, ok := reorderDown(rows, 1)
	require.True(t, ok)
	assert.False(t, op.category)
	assert.Equal(t, "Email", op.inCat)
	assert.Equal(t, "Intro", op.dragged)
	assert.Equal(t, "Closing", op.target)

	// Intro is last in its category, next row is a header.
	_, ok = reorderDown(rows, 2)
	assert.False(t, ok)

	// Quick Question is the last row of all.
	_, ok = reorderDown(rows, 5)
	assert.False(t, ok)
}

func TestReorderUp_Category(t *testing.T) {
	rows := flatten(testViews())

	// Code (index 3) moves above Email, skipping Email's snippets.
	op, ok := reorderUp(rows, 3)
	require.True(t, ok)
	assert.True(t, op.category)
	assert.Equal(t, "Code", op.dragged)
	assert.Equal(t, "Email", op.target)

	// Email is the first category.
	_, ok = reorderUp(rows, 0)
	assert.False(t, ok)

	// The reserved bucket never moves.
	_, ok = reorderUp(rows, 4)
	assert.False(t, ok)
}

func TestReorderDown_Category(t *testing.T) {
	rows := flatten(testViews())

	// Moving Email down reinserts Code in front of it.
	op, ok := reorderDown(rows, 0)
	require.True(t, ok)
	assert.True(t, op.category)
	assert.Equal(t, "Code", op.dragged)
	assert.Equal(t, "Email", op.target)

	// Code is the last real category, below it only the reserved bucket.
	_, ok = reorderDown(rows, 3)
	assert.False(t, ok)

	_, ok = reorderDown(rows, 4)
	assert.False(t, ok)
}

func TestReorderOutOfRange(t *testing.T) {
	rows := flatten(testViews())

	_, ok := reorderUp(rows, -1)
	assert.False(t, ok)
	_, ok = reorderUp(rows, len(rows))
	assert.False(t, ok)
	_, ok = reorderDown(rows, -1)
	assert.False(t, ok)
	_, ok = reorderDown(rows, len(rows))
	assert.False(t, ok)
}
