package types

import (
	"errors"
	"time"
)

// Recipe is the sole persisted entity: a named dish with a free-form
// description, its ingredient list, and ordered preparation steps.
type Recipe struct {
	RecipeID    int64     `json:"recipe_id"`    // Auto-generated primary key; never reused.
	Name        string    `json:"name"`         // Required, non-empty.
	Description string    `json:"description"`  // Required, non-empty.
	Ingredients []string  `json:"ingredients"`  // Required, at least one item.
	Steps       []string  `json:"steps"`        // Required, at least one item.
	DateCreated time.Time `json:"date_created"` // Set once at insert; immutable.
}

// Recipe validation errors. Each names the first field that failed so
// callers can re-prompt for exactly that field.
var (
	ErrNameEmpty        = errors.New("recipe name must not be empty")
	ErrDescriptionEmpty = errors.New("recipe description must not be empty")
	ErrIngredientsEmpty = errors.New("recipe must have at least one ingredient")
	ErrStepsEmpty       = errors.New("recipe must have at least one step")
)

// Validate checks the four user-editable fields and returns the sentinel
// for the first empty one. RecipeID and DateCreated are store-owned and
// not validated here.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ErrNameEmpty
	}
	if r.Description == "" {
		return ErrDescriptionEmpty
	}
	if len(r.Ingredients) == 0 {
		return ErrIngredientsEmpty
	}
	if len(r.Steps) == 0 {
		return ErrStepsEmpty
	}
	return nil
}

// IsValidation reports whether err is one of the recipe field validation
// sentinels. The menu uses this to re-prompt instead of surfacing a
// storage failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameEmpty) ||
		errors.Is(err, ErrDescriptionEmpty) ||
		errors.Is(err, ErrIngredientsEmpty) ||
		errors.Is(err, ErrStepsEmpty)
}
