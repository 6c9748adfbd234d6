// CLI integration tests covering the recipe lifecycle end to end.
package integration

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recipeJSON mirrors the CLI's JSON output shape.
type recipeJSON struct {
	RecipeID    int64    `json:"recipe_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	DateCreated string   `json:"date_created"`
}

// TestMain builds the cookbook binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}

	tmpDir, err := os.MkdirTemp("", "cookbook-test-*")
	if err != nil {
		buildErr = err
		os.Exit(m.Run())
	}
	cookbookBin = filepath.Join(tmpDir, "cookbook")

	cmd := exec.Command("go", "build", "-o", cookbookBin, "./cmd/cookbook")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestInitCreatesDatabase(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRun("init")
	assert.Contains(t, result.Stdout, "Initialized recipe database")

	_, err := os.Stat(filepath.Join(env.DataDir, "recipes.db"))
	assert.NoError(t, err, "database file must exist after init")

	// Second init is a no-op.
	env.MustRun("init")
}

func TestScriptedLifecycle(t *testing.T) {
	env := NewTestEnv(t)

	add := env.MustRun("add",
		"--name", "Pancakes",
		"--description", "Fluffy breakfast",
		"--ingredient", "flour", "--ingredient", "milk", "--ingredient", "egg",
		"--step", "mix", "--step", "cook")
	assert.Contains(t, add.Stdout, "Recipe created with ID: 1")

	show := env.MustRun("show", "1", "--json")
	var got recipeJSON
	require.NoError(t, json.Unmarshal([]byte(show.Stdout), &got))
	assert.Equal(t, int64(1), got.RecipeID)
	assert.Equal(t, "Pancakes", got.Name)
	assert.Equal(t, []string{"flour", "milk", "egg"}, got.Ingredients)
	assert.Equal(t, []string{"mix", "cook"}, got.Steps)
	assert.NotEmpty(t, got.DateCreated)

	list := env.MustRun("list", "--json")
	var all []recipeJSON
	require.NoError(t, json.Unmarshal([]byte(list.Stdout), &all))
	require.Len(t, all, 1)

	env.MustRun("update", "1", "--name", "Pancakes v2")
	show = env.MustRun("show", "1", "--json")
	require.NoError(t, json.Unmarshal([]byte(show.Stdout), &got))
	assert.Equal(t, "Pancakes v2", got.Name)
	assert.Equal(t, "Fluffy breakfast", got.Description, "unchanged fields keep their values")

	env.MustRun("delete", "1")
	missing := env.Run(nil, "show", "1")
	assert.Equal(t, 1, missing.ExitCode)
	assert.Contains(t, missing.Stderr, "not found")

	list = env.MustRun("list")
	assert.Contains(t, list.Stdout, "No recipes found.")
}

func TestMissingIDExitsUserError(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	for _, args := range [][]string{
		{"show", "42"},
		{"update", "42", "--name", "x"},
		{"delete", "42"},
	} {
		result := env.Run(nil, args...)
		assert.Equal(t, 1, result.ExitCode, "args: %v", args)
		assert.Contains(t, result.Stderr, "not found", "args: %v", args)
	}
}

func TestInvalidIDExitsUserError(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	result := env.Run(nil, "show", "pancakes")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "not a valid recipe ID")
}

func TestAddValidation(t *testing.T) {
	env := NewTestEnv(t)

	result := env.Run(nil, "add", "--name", "Toast", "--description", "Crunchy")
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stderr, "ingredient")
}

func TestExportImport(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("add",
		"--name", "Tea", "--description", "Hot drink",
		"--ingredient", "water", "--ingredient", "tea leaves",
		"--step", "boil", "--step", "steep")

	exportPath := filepath.Join(env.TempDir, "recipes.jsonl")
	env.MustRun("export", exportPath)

	fresh := NewTestEnv(t)
	result := fresh.MustRun("import", exportPath)
	assert.Contains(t, result.Stdout, "Imported 1 recipes")

	show := fresh.MustRun("show", "1", "--json")
	var got recipeJSON
	require.NoError(t, json.Unmarshal([]byte(show.Stdout), &got))
	assert.Equal(t, "Tea", got.Name)
	assert.Equal(t, []string{"water", "tea leaves"}, got.Ingredients)
}

func TestInteractiveMenuSession(t *testing.T) {
	env := NewTestEnv(t)

	session := strings.Join([]string{
		"add",
		"Salad",
		"Fresh and quick",
		"lettuce", "tomato", "",
		"chop", "toss", "",
		"list",
		"view 1",
		"quit",
	}, "\n") + "\n"

	result := env.Run(strings.NewReader(session))
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Stdout, "Cook Book")
	assert.Contains(t, result.Stdout, "Recipe created with ID: 1")
	assert.Contains(t, result.Stdout, "Name: Salad")
	assert.Contains(t, result.Stdout, "1. chop")
	assert.Contains(t, result.Stdout, "Goodbye!")
}

func TestVersion(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRun("version")
	assert.Contains(t, result.Stdout, "cookbook v")
}
