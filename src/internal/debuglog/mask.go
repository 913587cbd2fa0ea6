package debuglog

import (
	"strconv"
	"strings"

	"github.com/maksimkurb/debug-tools/src/internal/errors"
	"github.com/maksimkurb/debug-tools/src/internal/utils"
)

// Mask is a set of caller-defined debug categories, one per bit.
// Categories are combined with bitwise OR.
type Mask uint64

const (
	// AllCategories enables every category.
	AllCategories Mask = ^Mask(0)
	// NoCategories disables all output.
	NoCategories Mask = 0
	// DefaultEmptyLineCategory is the category used by InsertEmptyLine callers
	// that have no category of their own.
	DefaultEmptyLineCategory Mask = 1
)

// Has reports whether m shares at least one bit with category.
func (m Mask) Has(category Mask) bool {
	return m&category != 0
}

func (m Mask) String() string {
	return utils.FormatMask(uint64(m))
}

// ParseMask parses a mask written in decimal, hex (0x), octal (0o) or
// binary (0b) notation.
func ParseMask(s string) (Mask, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, errors.NewValidationError("invalid category mask "+strconv.Quote(s), err)
	}
	return Mask(value), nil
}
