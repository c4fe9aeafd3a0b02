package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarChoiceIterator(t *testing.T) {
	m := NewMachine()
	x := m.NewVariable()

	t.Run("yields every value in order", func(t *testing.T) {
		it := NewVarChoiceIterator(x, "a", "b")

		c, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, VarChoice{Var: x, Value: "a"}, c)

		c, ok = it.Next()
		require.True(t, ok)
		assert.Equal(t, VarChoice{Var: x, Value: "b"}, c)

		_, ok = it.Next()
		assert.False(t, ok)
	})

	t.Run("empty", func(t *testing.T) {
		it := NewVarChoiceIterator(x)
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestVarChoice_Apply(t *testing.T) {
	t.Run("binds the variable", func(t *testing.T) {
		m := NewMachine()
		x := m.NewVariable()
		assert.True(t, VarChoice{Var: x, Value: 3}.Apply(m))
		assert.Equal(t, 3, Deref(x))
	})

	t.Run("fails against an incompatible binding", func(t *testing.T) {
		m := NewMachine()
		x := m.NewVariable()
		require.True(t, m.Unify(x, 4))
		assert.False(t, VarChoice{Var: x, Value: 3}.Apply(m))
	})
}

func TestVarChoicesOf(t *testing.T) {
	m := NewMachine()

	t.Run("no hook", func(t *testing.T) {
		assert.Nil(t, VarChoicesOf(m.NewVariable()))
	})

	t.Run("uses the declared candidates", func(t *testing.T) {
		x := m.NewVariable()
		x.Choices = func() []Term { return []Term{1, 2} }

		it := VarChoicesOf(x)
		require.NotNil(t, it)

		c, ok := it.Next()
		require.True(t, ok)
		assert.True(t, c.Apply(m))
		assert.Equal(t, 1, Deref(x))
	})
}
