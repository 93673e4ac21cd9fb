package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, c.Rewards)
	assert.NotEmpty(t, c.ScratchCards)

	r, ok := c.Reward(1)
	require.True(t, ok)
	assert.Equal(t, int64(100), r.PointsCost)

	card, ok := c.ScratchCard("free-cookie")
	require.True(t, ok)
	assert.Equal(t, 300.0, card.MinimumOrder)
	assert.NotNil(t, card.When)

	_, ok = c.ScratchCard("missing")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rewards:
  - {id: 7, name: Tea, points_cost: 20}
recommendations:
  "10": ["11", "12"]
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"11", "12"}, c.Recommendations["10"])
	assert.Empty(t, c.ScratchCards)
}

func TestParseRejectsDuplicateCards(t *testing.T) {
	_, err := Parse([]byte(`
scratch_cards:
  - {id: a}
  - {id: a}
`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
