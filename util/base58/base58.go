// Package base58 implements the Bitcoin flavoured base58 encoding.
//
// The encoded form is the big-endian value of the input written in base 58,
// prefixed with one zero symbol ('1') for every leading zero byte. All
// scratch state that held input-derived digits is zeroed before the
// functions return.
package base58

import (
	"base58kit/util/bigint"
	"base58kit/util/byteutil"
)

// chunkDigits is the largest n with 58^n < 2^64, so that a run of n digits
// can be accumulated in a uint64 before touching the big integer.
const chunkDigits = 10

var chunkPower = bigint.New().Pow(radix, chunkDigits)

// Encode encodes the given bytes into a base58 string.
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	value := bigint.FromBytes(input)
	defer value.Wipe()

	zeros := byteutil.LeadingZeros(input)

	// Each byte needs at most log(256)/log(58) ~ 1.37 digits.
	digits := make([]byte, 0, zeros+(len(input)-zeros)*138/100+1)

	for value.CmpUint64(radix) >= 0 {
		rem := value.DivModUint64(value, radix)
		digits = append(digits, Alphabet[rem])
	}

	// A zero value is carried entirely by the zero symbols below.
	if !value.IsZero() {
		digits = append(digits, Alphabet[value.Uint64()])
	}

	for i := 0; i < zeros; i++ {
		digits = append(digits, zeroSymbol)
	}

	byteutil.ReverseInPlace(digits)
	encoded := string(digits)
	byteutil.Wipe(digits)

	return encoded
}

// Decode decodes a base58 string into bytes. It fails with an
// *InvalidCharacterError on the first character outside of Alphabet.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	// value and scratch take turns holding the running total. Both are
	// sized for the whole input so that no digit storage is reallocated.
	value := bigint.ForDigits(len(input), radix)
	defer value.Wipe()
	scratch := bigint.ForDigits(len(input), radix)
	defer scratch.Wipe()

	var chunk uint64
	n := 0
	for offset, c := range input {
		index := IndexOf(c)
		if index < 0 {
			return nil, &InvalidCharacterError{Char: c, Offset: offset}
		}

		chunk = chunk*radix + uint64(index)
		n++

		if n == chunkDigits {
			value, scratch = accumulate(value, scratch, chunkPower, chunk)
			chunk, n = 0, 0
		}
	}

	if n > 0 {
		power := bigint.New().Pow(radix, uint64(n))
		value, scratch = accumulate(value, scratch, power, chunk)
	}

	numeric := value.Bytes()
	defer byteutil.Wipe(numeric)

	zeros := leadingZeroSymbols(input)
	decoded := make([]byte, zeros+len(numeric))
	copy(decoded[zeros:], numeric)

	return decoded, nil
}

// IsValid tells if s consists of Alphabet characters only.
// The empty string is valid.
func IsValid(s string) bool {
	for _, c := range s {
		if IndexOf(c) < 0 {
			return false
		}
	}

	return true
}

// accumulate computes value*power + chunk into scratch and returns the
// new total followed by the superseded one.
func accumulate(value, scratch, power *bigint.Int, chunk uint64) (*bigint.Int, *bigint.Int) {
	digit := bigint.FromUint64(chunk)
	defer digit.Wipe()

	scratch.Mul(value, power)
	scratch.Add(scratch, digit)

	return scratch, value
}

func leadingZeroSymbols(s string) int {
	n := 0
	for n < len(s) && s[n] == zeroSymbol {
		n++
	}

	return n
}
