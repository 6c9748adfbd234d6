// Package sqlite implements the SQLite storage layer for Cookbook.
package sqlite

// DatabaseFileName is the name of the database file inside the data
// directory.
const DatabaseFileName = "recipes.db"

// Schema DDL. Ingredients and steps are JSON arrays of strings stored
// in TEXT columns; date_created is RFC 3339 UTC. AUTOINCREMENT keeps
// recipe_id values from ever being reused after a delete.
const createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    recipe_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    ingredients TEXT NOT NULL,
    steps TEXT NOT NULL,
    date_created TEXT NOT NULL
);`
