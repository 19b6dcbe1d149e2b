package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the fixed number of filmworks per list page.
const DefaultPageSize = 50

// LastPage is the requested page number meaning "whatever the last page is".
const LastPage = -1

// Page describes one window over an ordered result set of Count rows.
type Page struct {
	Number     int
	Size       int
	Count      int64
	TotalPages int
	Prev       *int
	Next       *int
}

// ParsePage reads the page query parameter. Anything that is not a positive
// integer or "last" falls back to the first page. Positive numbers too large
// for an int saturate, so they still land past the last page.
func ParsePage(raw string) int {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "last") {
		return LastPage
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate computes the window and neighbour pages for the requested page.
// Requests past the last page yield an out-of-range page with no next page.
func Paginate(requested, size int, count int64) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if count < 0 {
		count = 0
	}

	totalPages := int((count + int64(size) - 1) / int64(size))

	number := requested
	switch {
	case number == LastPage:
		number = max(totalPages, 1)
	case number < 1:
		number = 1
	}

	p := Page{
		Number:     number,
		Size:       size,
		Count:      count,
		TotalPages: totalPages,
	}
	if prev := min(number-1, totalPages); prev >= 1 {
		p.Prev = &prev
	}
	if number < totalPages {
		next := number + 1
		p.Next = &next
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// OutOfRange reports whether the page lies past the end of the result set.
func (p Page) OutOfRange() bool {
	return p.Number > p.TotalPages
}
