package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeValidate(t *testing.T) {
	valid := func() Recipe {
		return Recipe{
			Name:        "Pancakes",
			Description: "Fluffy breakfast",
			Ingredients: []string{"flour", "milk", "egg"},
			Steps:       []string{"mix", "cook"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Recipe)
		wantErr error
	}{
		{
			name:   "complete recipe is valid",
			mutate: func(r *Recipe) {},
		},
		{
			name:    "empty name",
			mutate:  func(r *Recipe) { r.Name = "" },
			wantErr: ErrNameEmpty,
		},
		{
			name:    "empty description",
			mutate:  func(r *Recipe) { r.Description = "" },
			wantErr: ErrDescriptionEmpty,
		},
		{
			name:    "nil ingredients",
			mutate:  func(r *Recipe) { r.Ingredients = nil },
			wantErr: ErrIngredientsEmpty,
		},
		{
			name:    "empty ingredients slice",
			mutate:  func(r *Recipe) { r.Ingredients = []string{} },
			wantErr: ErrIngredientsEmpty,
		},
		{
			name:    "nil steps",
			mutate:  func(r *Recipe) { r.Steps = nil },
			wantErr: ErrStepsEmpty,
		},
		{
			name: "name reported before steps when both empty",
			mutate: func(r *Recipe) {
				r.Name = ""
				r.Steps = nil
			},
			wantErr: ErrNameEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrNameEmpty))
	assert.True(t, IsValidation(ErrDescriptionEmpty))
	assert.True(t, IsValidation(ErrIngredientsEmpty))
	assert.True(t, IsValidation(ErrStepsEmpty))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(nil))
}
