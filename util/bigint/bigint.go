// Package bigint provides the unsigned arbitrary-precision integer used by
// the codec. Every value can be wiped so that digits derived from key
// material do not linger on the heap after use.
package bigint

import (
	"math/big"
	"math/bits"

	"base58kit/util/byteutil"
)

// Int is an unsigned arbitrary-precision integer.
// The zero value is ready to use and represents 0.
type Int struct {
	v big.Int
}

// New returns a zero value.
func New() *Int {
	return new(Int)
}

// ForDigits returns a zero value whose storage holds any number of up to
// n digits in the given radix, plus a word of headroom for intermediate
// results. Add, and Mul into a receiver that is not an operand, reuse that
// storage as long as results stay within the bound.
func ForDigits(n int, radix uint64) *Int {
	words := n*bits.Len64(radix-1)/bits.UintSize + 2

	z := new(Int)
	z.v.SetBits(make([]big.Word, 0, words))
	return z
}

// FromUint64 returns an Int holding x.
func FromUint64(x uint64) *Int {
	z := new(Int)
	z.v.SetUint64(x)
	return z
}

// FromBytes interprets buf as a big-endian unsigned magnitude.
func FromBytes(buf []byte) *Int {
	z := new(Int)
	z.v.SetBytes(buf)
	return z
}

// FromLittleEndian interprets buf as a little-endian unsigned magnitude.
// The reversed copy used for construction is wiped before returning.
func FromLittleEndian(buf []byte) *Int {
	scratch := byteutil.ReverseBytes(buf)
	defer byteutil.Wipe(scratch)

	return FromBytes(scratch)
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	z.v.Add(&x.v, &y.v)
	return z
}

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	z.v.Mul(&x.v, &y.v)
	return z
}

// Div sets z to x/y and returns z. It panics if y is zero.
func (z *Int) Div(x, y *Int) *Int {
	z.v.Quo(&x.v, &y.v)
	return z
}

// Mod sets z to x mod y and returns z. It panics if y is zero.
func (z *Int) Mod(x, y *Int) *Int {
	z.v.Rem(&x.v, &y.v)
	return z
}

// DivModUint64 sets z to x/d and returns x mod d.
// It panics if d is zero.
func (z *Int) DivModUint64(x *Int, d uint64) uint64 {
	var divisor, rem big.Int
	divisor.SetUint64(d)

	z.v.QuoRem(&x.v, &divisor, &rem)
	r := rem.Uint64()
	wipe(&rem)

	return r
}

// Pow sets z to base**exp and returns z.
func (z *Int) Pow(base, exp uint64) *Int {
	var b, e big.Int
	b.SetUint64(base)
	e.SetUint64(exp)

	z.v.Exp(&b, &e, nil)
	return z
}

// Cmp compares z and y, returning -1, 0 or +1.
func (z *Int) Cmp(y *Int) int {
	return z.v.Cmp(&y.v)
}

// CmpUint64 compares z and y, returning -1, 0 or +1.
func (z *Int) CmpUint64(y uint64) int {
	if !z.v.IsUint64() {
		return 1
	}

	x := z.v.Uint64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// IsZero tells if z == 0.
func (z *Int) IsZero() bool {
	return z.v.Sign() == 0
}

// Uint64 returns the low 64 bits of z. It is meant for reading out
// small digits that are known to fit.
func (z *Int) Uint64() uint64 {
	return z.v.Uint64()
}

// Bytes returns the minimal big-endian representation of z.
// Zero is represented by an empty slice. The caller owns the result.
func (z *Int) Bytes() []byte {
	return z.v.Bytes()
}

// BitLen returns the length of z in bits.
func (z *Int) BitLen() int {
	return z.v.BitLen()
}

func (z *Int) String() string {
	return z.v.String()
}

// Wipe zeroes the whole backing array of z and resets it to 0.
func (z *Int) Wipe() {
	wipe(&z.v)
}

// A value that shrank keeps its former high words past the current length.
func wipe(x *big.Int) {
	words := x.Bits()
	words = words[:cap(words)]
	for i := range words {
		words[i] = 0
	}
	x.SetUint64(0)
}
