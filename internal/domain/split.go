package domain

import (
	"fmt"
	"strconv"
)

// SplitTests divides tests into at most count contiguous chunks whose sizes
// differ by at most one. Order is preserved and no chunk is empty, so
// fewer than count chunks come back when there are fewer tests.
func SplitTests(tests []string, count int) ([][]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("sub-suite count must be positive, got %d", count)
	}

	if count > len(tests) {
		count = len(tests)
	}

	chunks := make([][]string, 0, count)
	if count == 0 {
		return chunks, nil
	}

	size, extra := len(tests)/count, len(tests)%count
	start := 0

	for i := 0; i < count; i++ {
		end := start + size
		if i < extra {
			end++
		}

		chunk := make([]string, end-start)
		copy(chunk, tests[start:end])
		chunks = append(chunks, chunk)
		start = end
	}

	return chunks, nil
}

// SubSuiteName names the index-th of count generated sub-suites. The index
// is zero-padded to the width of the largest index so that names sort.
func SubSuiteName(base string, index, count int) string {
	width := len(strconv.Itoa(max(count-1, 0)))
	return fmt.Sprintf("%s_%0*d", base, width, index)
}

// MiscSuiteName names the suite that runs everything the sub-suites do not.
func MiscSuiteName(base string) string {
	return base + "_misc"
}
