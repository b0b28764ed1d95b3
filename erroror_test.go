package erroror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/erroror"
)

type person struct {
	Name string
	Age  int
}

func TestFromValue(t *testing.T) {
	want := person{Name: "Alice", Age: 30}

	res := erroror.FromValue(want)

	assert.True(t, res.IsSuccess(), "Expected success state")
	assert.False(t, res.IsError(), "Expected no error state")
	assert.Equal(t, want, res.Value())
}

func TestFromError(t *testing.T) {
	err := erroror.Validation("User.Name", "Name is too short")

	res := erroror.FromError[person](err)

	require.True(t, res.IsError(), "Expected error state")
	assert.False(t, res.IsSuccess(), "Expected no success state")

	errs := res.Errors()
	require.Len(t, errs, 1)
	assert.True(t, errs[0].Equal(err))
	assert.True(t, res.FirstError().Equal(err))
}

func TestFromErrorsPreservesOrder(t *testing.T) {
	first := erroror.Validation("User.Name", "Name is too short")
	second := erroror.Validation("User.Age", "Age must be positive")

	res := erroror.FromErrors[person](first, second)

	require.True(t, res.IsError())
	errs := res.Errors()
	require.Len(t, errs, 2)
	assert.True(t, errs[0].Equal(first), "Expected first argument first")
	assert.True(t, errs[1].Equal(second))
	assert.True(t, res.FirstError().Equal(first))
}

func TestFromErrorsVariadicArity(t *testing.T) {
	errs := []erroror.Error{
		erroror.Failure("Op.One", "first"),
		erroror.Conflict("Op.Two", "second"),
		erroror.NotFound("Op.Three", "third"),
	}

	for n := 1; n <= len(errs); n++ {
		res := erroror.FromErrors[int](errs[:n]...)
		require.True(t, res.IsError())
		got := res.Errors()
		require.Len(t, got, n, "Expected %d errors", n)
		for i := 0; i < n; i++ {
			assert.True(t, got[i].Equal(errs[i]))
		}
	}
}

func TestFromErrorsEmptyPanics(t *testing.T) {
	assert.PanicsWithValue(t, "erroror: at least one error required", func() {
		erroror.FromErrors[person]()
	})

	var none []erroror.Error
	assert.PanicsWithValue(t, "erroror: at least one error required", func() {
		erroror.FromErrors[person](none...)
	})
}

func TestFromErrorsCopiesInput(t *testing.T) {
	original := erroror.Validation("User.Name", "Name is too short")
	input := []erroror.Error{original}

	res := erroror.FromErrors[person](input...)
	input[0] = erroror.Conflict("User.Email", "mutated")

	assert.True(t, res.FirstError().Equal(original), "Expected container to own its error list")
}

func TestErrorsReturnsCopy(t *testing.T) {
	original := erroror.Validation("User.Name", "Name is too short")
	res := erroror.FromError[person](original)

	leaked := res.Errors()
	leaked[0] = erroror.Conflict("User.Email", "mutated")

	assert.True(t, res.FirstError().Equal(original), "Expected read-only view semantics")
}

func TestValuePanicsOnFailure(t *testing.T) {
	res := erroror.FromError[person](erroror.NotFound("User.NotFound", "User does not exist"))

	assert.PanicsWithValue(t, "erroror: value read on a failure result", func() {
		_ = res.Value()
	})
}

func TestErrorAccessorsPanicOnSuccess(t *testing.T) {
	res := erroror.FromValue(person{Name: "Alice"})

	assert.PanicsWithValue(t, "erroror: errors read on a success result", func() {
		_ = res.Errors()
	})
	assert.PanicsWithValue(t, "erroror: errors read on a success result", func() {
		_ = res.FirstError()
	})
}

func TestValidationScenario(t *testing.T) {
	err := erroror.Validation("User.Name", "Name is too short")

	res := erroror.FromError[person](err)

	require.True(t, res.IsError())
	assert.Equal(t, erroror.KindValidation, res.FirstError().Kind())
	assert.Equal(t, "User.Name", res.FirstError().Code())
	assert.Equal(t, "Name is too short", res.FirstError().Description())
}

func TestTwoValidationErrorsScenario(t *testing.T) {
	nameErr := erroror.Validation("User.Name", "Name is too short")
	ageErr := erroror.Validation("User.Age", "Age must be positive")

	res := erroror.FromErrors[person](nameErr, ageErr)

	require.True(t, res.IsError())
	errs := res.Errors()
	require.Len(t, errs, 2)
	assert.True(t, errs[0].Equal(nameErr))
	assert.True(t, errs[1].Equal(ageErr))
	assert.True(t, res.FirstError().Equal(nameErr))
}
