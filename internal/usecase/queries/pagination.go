package queries

import "shareit/internal/pkg/errs"

// pageFor converts the from/size window into a page index. The offset is
// truncated to a page boundary on purpose: from=7,size=5 lands on page 1.
// size=0 is rejected up front instead of dividing by zero.
func pageFor(from, size int) (int, error) {
	if from < 0 || size <= 0 {
		return 0, errs.ErrInvalidPagination
	}
	return from / size, nil
}
