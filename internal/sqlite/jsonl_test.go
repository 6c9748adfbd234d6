package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := setupStore(t)

	recipes := []*types.Recipe{
		{
			Name:        "Pancakes",
			Description: "Fluffy breakfast",
			Ingredients: []string{"flour", "milk", "egg"},
			Steps:       []string{"mix", "cook"},
		},
		{
			Name:        "Lentil soup",
			Description: "Weeknight staple",
			Ingredients: []string{"lentils", "onion", "stock"},
			Steps:       []string{"saute", "simmer", "season"},
		},
	}
	for _, r := range recipes {
		_, err := src.Create(r)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	require.NoError(t, src.ExportJSONL(path))

	dst := setupStore(t)
	count, err := dst.ImportJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := dst.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, r := range got {
		assert.Equal(t, recipes[i].Name, r.Name)
		assert.Equal(t, recipes[i].Description, r.Description)
		assert.Equal(t, recipes[i].Ingredients, r.Ingredients)
		assert.Equal(t, recipes[i].Steps, r.Steps)
		assert.True(t, r.DateCreated.Equal(recipes[i].DateCreated),
			"import preserves the original creation time")
	}
}

func TestImportSkipsMalformedLines(t *testing.T) {
	s := setupStore(t)

	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	content := `{"name":"Toast","description":"Crunchy","ingredients":["bread"],"steps":["toast"]}
not json at all
{"name":"","description":"missing name","ingredients":["x"],"steps":["y"]}

{"name":"Tea","description":"Hot drink","ingredients":["water","tea"],"steps":["boil","steep"]}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	count, err := s.ImportJSONL(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	got, err := s.List()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Toast", got[0].Name)
	assert.Equal(t, "Tea", got[1].Name)
}

func TestImportMissingFile(t *testing.T) {
	s := setupStore(t)

	_, err := s.ImportJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.Error(t, err)
}

func TestExportEmptyStore(t *testing.T) {
	s := setupStore(t)

	path := filepath.Join(t.TempDir(), "recipes.jsonl")
	require.NoError(t, s.ExportJSONL(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}
