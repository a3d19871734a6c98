package sequence

import (
	"bytes"
	"unicode"
)

var complement = [256]byte{
	'A': 'T', 'T': 'A',
	'C': 'G', 'G': 'C',
	'N': 'N',
}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Symbols without a complement become 'N'.
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, base := range seq {
		c := complement[base]
		if c == 0 {
			c = 'N'
		}
		out[n-1-i] = c
	}
	return out
}

// CalculateGCContent calculates the GC content of a DNA sequence.
func CalculateGCContent(seq []byte) float64 {
	if len(seq) == 0 {
		return 0.0
	}
	gcCount := 0
	for _, base := range seq {
		if base == 'G' || base == 'C' || base == 'g' || base == 'c' { // Case-insensitive
			gcCount++
		}
	}
	return float64(gcCount) / float64(len(seq))
}

// Normalize upper-cases seq and drops any whitespace, e.g. line breaks left
// over from wrapped input.
func Normalize(seq []byte) []byte {
	out := make([]byte, 0, len(seq))
	for _, c := range seq {
		if unicode.IsSpace(rune(c)) {
			continue
		}
		out = append(out, c)
	}
	return bytes.ToUpper(out)
}
