package byteutil

// ReverseBytes reverses the given bytes into a new slice,
// the origin bytes remain unchanged.
func ReverseBytes(raw []byte) []byte {
	if len(raw) == 0 {
		return raw
	}

	reversed := make([]byte, len(raw))

	for i := len(raw) - 1; i >= 0; i-- {
		reversed[len(raw)-i-1] = raw[i]
	}

	return reversed
}

// ReverseInPlace reverses the given bytes without allocating.
func ReverseInPlace(raw []byte) {
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
}

// Wipe overwrites every byte with zero.
func Wipe(raw []byte) {
	for i := range raw {
		raw[i] = 0
	}
}

// LeadingZeros returns the number of consecutive zero bytes
// at the start of raw.
func LeadingZeros(raw []byte) int {
	n := 0
	for n < len(raw) && raw[n] == 0 {
		n++
	}

	return n
}
