package utils

import (
	"fmt"
	"math/bits"
	"strings"
)

// SetBitPositions returns the positions of the bits set in mask, lowest first.
func SetBitPositions(mask uint64) []int {
	positions := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		pos := bits.TrailingZeros64(mask)
		positions = append(positions, pos)
		mask &^= 1 << pos
	}
	return positions
}

// FormatMask renders a mask as hex followed by its set bits.
func FormatMask(mask uint64) string {
	if mask == 0 {
		return "0x0 []"
	}
	if mask == ^uint64(0) {
		return fmt.Sprintf("%#x [all]", mask)
	}

	parts := make([]string, 0, bits.OnesCount64(mask))
	for _, pos := range SetBitPositions(mask) {
		parts = append(parts, fmt.Sprintf("bit%d", pos))
	}
	return fmt.Sprintf("%#x [%s]", mask, strings.Join(parts, " "))
}
