package base58

// Alphabet is the Bitcoin base58 alphabet. It omits '0', 'O', 'I' and 'l'.
// Index 0 is the zero symbol.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const radix = 58

// zeroSymbol is Alphabet[0]. A leading run of it encodes leading zero bytes.
const zeroSymbol = '1'

// indexes maps a byte to its alphabet position, -1 if absent.
// Filled once in init and never written afterwards.
var indexes [256]int8

func init() {
	for i := range indexes {
		indexes[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		indexes[Alphabet[i]] = int8(i)
	}
}

// IndexOf returns the position of c in Alphabet, or -1 if c is not part of it.
func IndexOf(c rune) int {
	if c < 0 || c >= rune(len(indexes)) {
		return -1
	}

	return int(indexes[c])
}
