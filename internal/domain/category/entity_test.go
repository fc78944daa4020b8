package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

func TestCategoryValidate(t *testing.T) {
	assert.NoError(t, NewCategory("Roman").Validate())

	err := NewCategory(" ").Validate()
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "name")
}

func TestCategoryApply(t *testing.T) {
	c := NewCategory("Roman")
	assert.NoError(t, c.Apply(Patch{}))
	assert.Equal(t, "Roman", c.Name)

	name := "Deneme"
	assert.NoError(t, c.Apply(Patch{Name: &name}))
	assert.Equal(t, "Deneme", c.Name)

	empty := ""
	assert.Error(t, Patch{Name: &empty}.Validate())
	assert.NoError(t, Patch{}.Validate())
}
