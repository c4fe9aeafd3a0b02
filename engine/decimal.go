package engine

import (
	"fmt"

	"github.com/cockroachdb/apd"
)

// Decimal is an exact numeric user value for engine terms.
// The underlying implementation is not based on floating-point, it's a
// [GDA](https://speleotrove.com/decimal/) compatible implementation to avoid
// approximation and determinism issues. It uses under the hood a decimal128
// with 34 precision digits.
type Decimal struct {
	dec *apd.Decimal
}

// The context that must be used for operations on Decimal.
var decimal128Ctx = apd.Context{
	Precision:   34,
	MaxExponent: 6144,
	MinExponent: -6143,
	Traps:       apd.DefaultTraps,
}

func NewDecimalFromString(s string) (Decimal, error) {
	dec, _, err := decimal128Ctx.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("pl: invalid decimal %q: %w", s, err)
	}
	return Decimal{dec: dec}, nil
}

func NewDecimalFromInt64(i int64) Decimal {
	var dec apd.Decimal
	dec.SetInt64(i)
	return Decimal{dec: &dec}
}

// EqualTerm reports numeric equality with another Decimal, so Decimals unify
// by value rather than by representation.
func (d Decimal) EqualTerm(t Term) bool {
	o, ok := t.(Decimal)
	return ok && d.dec.Cmp(o.dec) == 0
}

func (d Decimal) String() string {
	return fmt.Sprintf("%g", d.dec)
}

func (d Decimal) Add(other Decimal) (Decimal, error) {
	var res apd.Decimal
	if _, err := decimal128Ctx.Add(&res, d.dec, other.dec); err != nil {
		return Decimal{}, err
	}
	return Decimal{dec: &res}, nil
}

func (d Decimal) Sub(other Decimal) (Decimal, error) {
	var res apd.Decimal
	if _, err := decimal128Ctx.Sub(&res, d.dec, other.dec); err != nil {
		return Decimal{}, err
	}
	return Decimal{dec: &res}, nil
}

func (d Decimal) Mul(other Decimal) (Decimal, error) {
	var res apd.Decimal
	if _, err := decimal128Ctx.Mul(&res, d.dec, other.dec); err != nil {
		return Decimal{}, err
	}
	return Decimal{dec: &res}, nil
}

func (d Decimal) Eq(other Decimal) bool {
	return d.dec.Cmp(other.dec) == 0
}

func (d Decimal) Gt(other Decimal) bool {
	return d.dec.Cmp(other.dec) == 1
}

func (d Decimal) Gte(other Decimal) bool {
	return d.dec.Cmp(other.dec) >= 0
}

func (d Decimal) Lt(other Decimal) bool {
	return d.dec.Cmp(other.dec) == -1
}

func (d Decimal) Lte(other Decimal) bool {
	return d.dec.Cmp(other.dec) <= 0
}
