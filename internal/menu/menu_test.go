package menu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/cookbook/internal/sqlite"
	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// runSession drives a menu over a real store with scripted input lines
// and returns everything written to the output.
func runSession(t *testing.T, store Store, lines ...string) string {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	m := New(store, in, &out)
	require.NoError(t, m.Run())
	return out.String()
}

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s := sqlite.NewStore()
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}
	require.NoError(t, s.Open(config))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFullLifecycleSession(t *testing.T) {
	store := newStore(t)

	out := runSession(t, store,
		"add",
		"Pancakes",
		"Fluffy breakfast",
		"flour", "milk", "egg", "",
		"mix", "cook", "",
		"list",
		"view 1",
		"update 1",
		"Pancakes v2",
		"",  // keep description
		"n", // keep ingredients
		"n", // keep steps
		"view 1",
		"delete 1",
		"y",
		"list",
		"quit",
	)

	assert.Contains(t, out, "Recipe created with ID: 1")
	assert.Contains(t, out, "Stored Recipes")
	assert.Contains(t, out, "Recipe ID: 1")
	assert.Contains(t, out, "- flour")
	assert.Contains(t, out, "1. mix")
	assert.Contains(t, out, "2. cook")
	assert.Contains(t, out, "Recipe updated successfully!")
	assert.Contains(t, out, "Name: Pancakes v2")
	assert.Contains(t, out, "Description: Fluffy breakfast")
	assert.Contains(t, out, "Recipe deleted successfully!")
	assert.Contains(t, out, "No recipes found.")
	assert.Contains(t, out, "Goodbye!")

	recipes, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestViewMissingRecipe(t *testing.T) {
	store := newStore(t)

	out := runSession(t, store, "view 7", "quit")
	assert.Contains(t, out, "Recipe not found.")
	assert.Contains(t, out, "Goodbye!")
}

func TestViewPromptsForIDAndBack(t *testing.T) {
	store := newStore(t)

	out := runSession(t, store, "view", "back", "quit")
	assert.Contains(t, out, "Enter recipe number to view (or 'back'): ")
}

func TestInvalidIDReprompts(t *testing.T) {
	store := newStore(t)

	out := runSession(t, store, "view", "abc", "back", "quit")
	assert.Contains(t, out, "Please enter a valid number or 'back'.")
}

func TestUnknownSelection(t *testing.T) {
	store := newStore(t)

	out := runSession(t, store, "frobnicate", "quit")
	assert.Contains(t, out, `Unknown selection "frobnicate".`)
}

func TestAddRepromptsEmptyFields(t *testing.T) {
	store := newStore(t)

	out := runSession(t, store,
		"add",
		"", // empty name re-prompts
		"Toast",
		"Crunchy",
		"", // empty ingredient list re-prompts
		"bread", "",
		"toast it", "",
		"quit",
	)

	assert.Contains(t, out, "A value is required.")
	assert.Contains(t, out, "At least one ingredient is required.")
	assert.Contains(t, out, "Recipe created with ID: 1")

	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Toast", got.Name)
	assert.Equal(t, []string{"bread"}, got.Ingredients)
	assert.Equal(t, []string{"toast it"}, got.Steps)
}

func TestUpdateReplacingLists(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(&types.Recipe{
		Name:        "Soup",
		Description: "Warm",
		Ingredients: []string{"water"},
		Steps:       []string{"boil"},
	})
	require.NoError(t, err)

	runSession(t, store,
		"update 1",
		"", // keep name
		"", // keep description
		"y",
		"water", "lentils", "",
		"y",
		"boil", "simmer", "",
		"quit",
	)

	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Name)
	assert.Equal(t, []string{"water", "lentils"}, got.Ingredients)
	assert.Equal(t, []string{"boil", "simmer"}, got.Steps)
}

func TestDeleteDeclined(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(&types.Recipe{
		Name:        "Soup",
		Description: "Warm",
		Ingredients: []string{"water"},
		Steps:       []string{"boil"},
	})
	require.NoError(t, err)

	runSession(t, store, "delete 1", "n", "quit")

	_, err = store.Get(1)
	assert.NoError(t, err, "declined delete must keep the recipe")
}

func TestEOFEndsLoop(t *testing.T) {
	store := newStore(t)

	var out bytes.Buffer
	m := New(store, strings.NewReader(""), &out)
	require.NoError(t, m.Run())
}

// failingStore returns a storage error from every operation.
type failingStore struct{}

var errDiskGone = errors.New("disk I/O error")

func (failingStore) Create(*types.Recipe) (int64, error) { return 0, errDiskGone }
func (failingStore) Get(int64) (*types.Recipe, error)    { return nil, errDiskGone }
func (failingStore) List() ([]*types.Recipe, error)      { return nil, errDiskGone }
func (failingStore) Update(int64, *types.Recipe) error   { return errDiskGone }
func (failingStore) Delete(int64) error                  { return errDiskGone }

func TestStorageErrorKeepsLoopAlive(t *testing.T) {
	out := runSession(t, failingStore{}, "list", "view 1", "quit")

	assert.Contains(t, out, "Error: disk I/O error")
	assert.Contains(t, out, "Goodbye!")
}
