package queries

import (
	"fooddelivery/internal/pkg/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a window of a list result. Pages are numbered from 1.
type Page struct {
	Number int
	Size   int
}

// NewPage applies defaults to zero values and rejects anything else out of range.
func NewPage(number, size int) (Page, error) {
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("page size", size, 1, MaxPageSize)
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
