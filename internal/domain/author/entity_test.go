package author

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/optional"
)

func strPtr(s string) *string { return &s }

func TestAuthorValidate(t *testing.T) {
	assert.NoError(t, NewAuthor("Orhan", "Pamuk", nil).Validate())

	err := NewAuthor("", "Pamuk", nil).Validate()
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "first_name")

	err = NewAuthor("Orhan", "  ", nil).Validate()
	assert.Contains(t, err.Error(), "last_name")
}

func TestAuthorApply(t *testing.T) {
	a := NewAuthor("Orhan", "Pamuk", strPtr("Nobel 2006"))

	// 空补丁不修改任何字段
	require.NoError(t, a.Apply(Patch{}))
	assert.Equal(t, NewAuthor("Orhan", "Pamuk", strPtr("Nobel 2006")), a)

	require.NoError(t, a.Apply(Patch{LastName: strPtr("P.")}))
	assert.Equal(t, "Orhan", a.FirstName)
	assert.Equal(t, "P.", a.LastName)
	require.NotNil(t, a.Biography)

	require.NoError(t, a.Apply(Patch{Biography: optional.Null[string]()}))
	assert.Nil(t, a.Biography)

	assert.Error(t, a.Apply(Patch{FirstName: strPtr("")}))
}

func TestPatchValidate(t *testing.T) {
	assert.NoError(t, Patch{}.Validate())
	assert.NoError(t, Patch{Biography: optional.Null[string]()}.Validate())
	assert.True(t, apperrors.IsKind(Patch{FirstName: strPtr(" ")}.Validate(), apperrors.KindValidation))
}
