package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecimalFromString(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		d, err := NewDecimalFromString("3.14")
		assert.NoError(t, err)
		assert.Equal(t, "3.14", d.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewDecimalFromString("not a number")
		assert.Error(t, err)
	})
}

func TestDecimal_EqualTerm(t *testing.T) {
	one := NewDecimalFromInt64(1)

	t.Run("equal by value, not representation", func(t *testing.T) {
		other, err := NewDecimalFromString("1.00")
		require.NoError(t, err)
		assert.True(t, one.EqualTerm(other))
	})

	t.Run("different value", func(t *testing.T) {
		assert.False(t, one.EqualTerm(NewDecimalFromInt64(2)))
	})

	t.Run("different type", func(t *testing.T) {
		assert.False(t, one.EqualTerm(1))
		assert.False(t, one.EqualTerm("1"))
	})
}

func TestDecimal_Unify(t *testing.T) {
	m := NewMachine()
	x := m.NewVariable()
	require.True(t, m.Unify(x, NewDecimalFromInt64(5)))

	five, err := NewDecimalFromString("5.0")
	require.NoError(t, err)
	assert.True(t, m.Unify(x, five))
	assert.False(t, m.Unify(x, NewDecimalFromInt64(6)))
}

func TestDecimal_Arithmetic(t *testing.T) {
	cases := []struct {
		title string
		op    func(a, b Decimal) (Decimal, error)
		a, b  int64
		want  int64
	}{
		{title: "add", op: Decimal.Add, a: 2, b: 3, want: 5},
		{title: "sub", op: Decimal.Sub, a: 5, b: 3, want: 2},
		{title: "mul", op: Decimal.Mul, a: 4, b: 3, want: 12},
	}
	for _, tt := range cases {
		t.Run(tt.title, func(t *testing.T) {
			got, err := tt.op(NewDecimalFromInt64(tt.a), NewDecimalFromInt64(tt.b))
			assert.NoError(t, err)
			assert.True(t, got.Eq(NewDecimalFromInt64(tt.want)))
		})
	}
}

func TestDecimal_Compare(t *testing.T) {
	one, two := NewDecimalFromInt64(1), NewDecimalFromInt64(2)

	assert.True(t, one.Lt(two))
	assert.True(t, one.Lte(two))
	assert.True(t, one.Lte(one))
	assert.True(t, two.Gt(one))
	assert.True(t, two.Gte(one))
	assert.True(t, two.Gte(two))
	assert.True(t, one.Eq(one))
	assert.False(t, one.Eq(two))
}
