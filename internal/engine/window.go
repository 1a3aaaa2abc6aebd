package engine

// Crop returns the contiguous window of at most height lines that ends offset
// lines before the newest one. Negative arguments count as zero and no
// intermediate value can wrap, so offset may be arbitrarily large.
func Crop(lines []string, offset, height int) []string {
	n := len(lines)
	offset = max(offset, 0)
	height = max(height, 0)
	end := 0
	if offset < n {
		end = n - offset
	}
	start := max(end-height, 0)
	return lines[start:end]
}

// ClampOffset pulls offset back so that a window of height lines over n lines
// starts no earlier than the first line. The result leaves the window full
// whenever n >= height, showing the oldest lines rather than blank rows.
func ClampOffset(n, offset, height int) int {
	limit := max(n-max(height, 0), 0)
	return min(max(offset, 0), limit)
}

// addOffset adds delta to offset without wrapping, saturating at zero and at
// the largest int.
func addOffset(offset, delta int) int {
	if delta > 0 && offset > maxInt-delta {
		return maxInt
	}
	return max(offset+delta, 0)
}

const maxInt = int(^uint(0) >> 1)
