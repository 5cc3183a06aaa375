package store

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestDefault_Golden fixes the on-disk shape of the first-run document.
// Regenerate with: go test ./internal/store -update
func TestDefault_Golden(t *testing.T) {
	data, err := json.MarshalIndent(Default(), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "seed", data)
}
