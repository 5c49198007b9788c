package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/defcheck/pkg/definition"
)

func TestError(t *testing.T) {
	def := definition.NewProperty("id", "int", nil)
	err := NewError(def, "is bad")

	assert.Same(t, def, err.Definition())
	assert.Equal(t, "is bad", err.Message())
	assert.Equal(t, "is bad", err.Error())
	assert.Equal(t, "property id: is bad", err.String())
}

func TestError_EmptyMessage(t *testing.T) {
	err := NewError(definition.NewDocumentation(""), "")
	assert.Equal(t, "", err.Message())
}

func TestErrorList(t *testing.T) {
	var list ErrorList
	def := definition.NewDocumentation("text")

	assert.False(t, list.HasErrors())
	assert.Nil(t, list.Errors())

	list.AddError(def, "one")
	list.AddErrorf(def, "%s-%d", "two", 2)

	require.True(t, list.HasErrors())
	errs := list.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "one", errs[0].Message())
	assert.Equal(t, "two-2", errs[1].Message())

	list.ResetErrors()
	assert.False(t, list.HasErrors())
	assert.Empty(t, list.Errors())
}

func TestErrorList_ErrorsReturnsCopy(t *testing.T) {
	var list ErrorList
	def := definition.NewDocumentation("text")
	list.AddError(def, "original")

	got := list.Errors()
	got[0] = NewError(def, "mutated")

	assert.Equal(t, "original", list.Errors()[0].Message())
}

func TestInstanceOf(t *testing.T) {
	leaf := newTargetValidator(nil)
	c := New()

	assert.True(t, InstanceOf[*targetValidator]()(leaf))
	assert.False(t, InstanceOf[*targetValidator]()(c))
	assert.True(t, InstanceOf[Validator]()(c))
	assert.True(t, InstanceOf[*Composite]()(c))
}
