package browser

// PageForOffset converts a zero-based row offset to a 1-based page number
func PageForOffset(offset, size int) int {
	if size <= 0 || offset < 0 {
		return 1
	}
	return offset/size + 1
}

// OffsetForPage converts a 1-based page number to a zero-based row offset
func OffsetForPage(page, size int) int {
	if page < 1 || size <= 0 {
		return 0
	}
	return (page - 1) * size
}

// PageCount returns the number of pages needed for total records
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// NextOffset returns the offset of the following page, clamped to the last page.
// It never moves backwards: with an unknown total (0 after a failed fetch) it
// returns offset unchanged.
func NextOffset(offset, size, total int) int {
	last := LastOffset(total, size)
	next := offset + size
	if next > last {
		return max(last, offset)
	}
	return next
}

// PrevOffset returns the offset of the preceding page, clamped to zero
func PrevOffset(offset, size int) int {
	prev := offset - size
	if prev < 0 {
		return 0
	}
	return prev
}

// LastOffset returns the offset of the final page
func LastOffset(total, size int) int {
	pages := PageCount(total, size)
	if pages == 0 {
		return 0
	}
	return OffsetForPage(pages, size)
}

// ResizeOffset re-aligns offset to a new page size so the page holding
// the first visible row stays on screen.
func ResizeOffset(offset, newSize int) int {
	if newSize <= 0 || offset <= 0 {
		return 0
	}
	return (offset / newSize) * newSize
}
