package hexconv

// Halfbyte maps every hexadecimal digit (in both cases) into its value. Any other
// character is mapped into 0xFF, so a pair of characters is valid only if neither
// of them results in 0xFF.
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := '0'; c <= '9'; c++ {
		table[c] = byte(c - '0')
	}

	for c := 'a'; c <= 'f'; c++ {
		table[c] = byte(c-'a') + 10
		table[c-0x20] = byte(c-'a') + 10
	}

	return table
}()

// Is tells whether the character is a hexadecimal digit.
func Is(char byte) bool {
	return Halfbyte[char] != 0xFF
}

// Pair decodes two hexadecimal digits into a single byte. ok is false if any of them
// isn't a valid hexadecimal digit.
func Pair(hi, lo byte) (char byte, ok bool) {
	x, y := Halfbyte[hi], Halfbyte[lo]
	if x|y == 0xFF {
		return 0, false
	}

	return x<<4 | y, true
}
