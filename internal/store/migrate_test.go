package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Idempotent(t *testing.T) {
	// Inputs in need of migration: old shapes, missing fields
	inputs := map[string]string{
		"legacy_array":    `[{"name":"A","content":"B"},{"name":"C","content":"D"}]`,
		"missing_fields":  `{"categories":[{"name":"Email"}]}`,
		"partial_current": `{"version":2,"categories":[],"uncategorized":[{"name":"X","content":"Y"}]}`,
		"full_current":    `{"version":2,"categories":[{"name":"A","prompts":[],"expanded":false}],"uncategorized":[],"uncategorized_expanded":true}`,
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			once, err := decode([]byte(input))
			require.NoError(t, err)

			data, err := json.Marshal(once)
			require.NoError(t, err)

			twice, err := decode(data)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestDecode_BackfillsDefaults(t *testing.T) {
	doc, err := decode([]byte(`{"categories":[{"name":"Email"}]}`))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, []Snippet{}, doc.Uncategorized)
	assert.True(t, doc.UncategorizedExpanded)

	require.Len(t, doc.Categories, 1)
	assert.Equal(t, "Email", doc.Categories[0].Name)
	assert.Equal(t, []Snippet{}, doc.Categories[0].Prompts)
	assert.True(t, doc.Categories[0].Expanded)
}

func TestDecode_PreservesExplicitFalse(t *testing.T) {
	input := `{"version":2,"categories":[{"name":"A","prompts":[],"expanded":false}],"uncategorized":[],"uncategorized_expanded":false}`

	doc, err := decode([]byte(input))
	require.NoError(t, err)

	assert.False(t, doc.Categories[0].Expanded)
	assert.False(t, doc.UncategorizedExpanded)
}

func TestDecode_LegacyEmptyArray(t *testing.T) {
	doc, err := decode([]byte(`[]`))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, []Category{}, doc.Categories)
	assert.Equal(t, []Snippet{}, doc.Uncategorized)
	assert.True(t, doc.UncategorizedExpanded)
}

func TestDecode_CurrentDocumentUnchanged(t *testing.T) {
	doc := &Document{
		Version: CurrentVersion,
		Categories: []Category{
			{Name: "Email", Prompts: []Snippet{{Name: "Closing", Content: "Kind regards,\n\n"}}, Expanded: true},
		},
		Uncategorized:         []Snippet{{Name: "Q", Content: "q"}},
		UncategorizedExpanded: false,
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	got, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDecode_LeadingWhitespace(t *testing.T) {
	doc, err := decode([]byte("\n\t  [{\"name\":\"A\",\"content\":\"B\"}]"))
	require.NoError(t, err)
	assert.Len(t, doc.Uncategorized, 1)
}
