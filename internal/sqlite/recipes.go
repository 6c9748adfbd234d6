// This file implements the CRUD operations over the recipes table.
// Every statement uses parameter binding; list-valued fields are
// marshaled to JSON text on the way in and back on the way out.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/cookbook/pkg/types"
)

// Create validates the recipe and inserts it with a server-generated
// recipe_id and the current UTC timestamp. On success it returns the
// new id and fills in r.RecipeID and r.DateCreated.
func (s *Store) Create(r *types.Recipe) (int64, error) {
	db, err := s.handle()
	if err != nil {
		return 0, err
	}
	if err := r.Validate(); err != nil {
		return 0, err
	}

	ingredients, steps, err := marshalLists(r)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Truncate(time.Second)
	res, err := db.Exec(
		"INSERT INTO recipes (name, description, ingredients, steps, date_created) VALUES (?, ?, ?, ?, ?)",
		r.Name, r.Description, ingredients, steps, now.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting recipe: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted recipe id: %w", err)
	}

	r.RecipeID = id
	r.DateCreated = now
	return id, nil
}

// Get retrieves one recipe by id. Returns ErrNotFound when no row
// matches and ErrInvalidID for ids below 1.
func (s *Store) Get(id int64) (*types.Recipe, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	if id < 1 {
		return nil, types.ErrInvalidID
	}

	row := db.QueryRow(
		"SELECT recipe_id, name, description, ingredients, steps, date_created FROM recipes WHERE recipe_id = ?",
		id,
	)
	recipe, err := hydrateRecipe(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting recipe %d: %w", id, err)
	}
	return recipe, nil
}

// List returns all recipes ordered by ascending recipe_id (insertion
// order). An empty table yields an empty slice.
func (s *Store) List() ([]*types.Recipe, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT recipe_id, name, description, ingredients, steps, date_created FROM recipes ORDER BY recipe_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*types.Recipe
	for rows.Next() {
		recipe, err := hydrateRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return recipes, nil
}

// Update replaces the four editable fields of an existing recipe.
// recipe_id and date_created are never touched. Returns ErrNotFound if
// the id does not exist; a missing row is never created.
func (s *Store) Update(id int64, r *types.Recipe) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if id < 1 {
		return types.ErrInvalidID
	}
	if err := r.Validate(); err != nil {
		return err
	}

	ingredients, steps, err := marshalLists(r)
	if err != nil {
		return err
	}

	res, err := db.Exec(
		"UPDATE recipes SET name = ?, description = ?, ingredients = ?, steps = ? WHERE recipe_id = ?",
		r.Name, r.Description, ingredients, steps, id,
	)
	if err != nil {
		return fmt.Errorf("updating recipe %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading update result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Delete removes the recipe with the given id. Returns ErrNotFound if
// no row matches.
func (s *Store) Delete(id int64) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if id < 1 {
		return types.ErrInvalidID
	}

	res, err := db.Exec("DELETE FROM recipes WHERE recipe_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting recipe %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateRecipe scans one row into a *types.Recipe, unmarshaling the
// JSON list columns and parsing the creation timestamp.
func hydrateRecipe(row scanner) (*types.Recipe, error) {
	var (
		r           types.Recipe
		ingredients string
		steps       string
		created     string
	)
	if err := row.Scan(&r.RecipeID, &r.Name, &r.Description, &ingredients, &steps, &created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("parsing ingredients for recipe %d: %w", r.RecipeID, err)
	}
	if err := json.Unmarshal([]byte(steps), &r.Steps); err != nil {
		return nil, fmt.Errorf("parsing steps for recipe %d: %w", r.RecipeID, err)
	}
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, fmt.Errorf("parsing date_created for recipe %d: %w", r.RecipeID, err)
	}
	r.DateCreated = ts
	return &r, nil
}

// marshalLists serializes the ingredient and step lists to JSON text
// for storage.
func marshalLists(r *types.Recipe) (ingredients, steps string, err error) {
	ing, err := json.Marshal(r.Ingredients)
	if err != nil {
		return "", "", fmt.Errorf("serializing ingredients: %w", err)
	}
	stp, err := json.Marshal(r.Steps)
	if err != nil {
		return "", "", fmt.Errorf("serializing steps: %w", err)
	}
	return string(ing), string(stp), nil
}
