package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	ps := fixture()
	assert.Equal(t, []int64{1, 2, 3}, ids(Paginate(ps, 0, 3)))
	assert.Equal(t, []int64{4, 5}, ids(Paginate(ps, 1, 3)))
	assert.Empty(t, Paginate(ps, 2, 3))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(Paginate(ps, 0, 10)))
	assert.Empty(t, Paginate(nil, 0, 3))
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	ps := fixture()
	for size := 1; size <= 6; size++ {
		for page := 0; page <= 6; page++ {
			got := Paginate(ps, page, size)
			assert.LessOrEqual(t, len(got), size)
			if page*size >= len(ps) {
				assert.Empty(t, got, "page=%d size=%d", page, size)
			}
		}
	}
}

func TestPaginateRejectsBadInput(t *testing.T) {
	ps := fixture()
	assert.Empty(t, Paginate(ps, -1, 3))
	assert.Empty(t, Paginate(ps, 0, 0))
	assert.Empty(t, Paginate(ps, 0, -3))
}

func TestPaginateHugePageSize(t *testing.T) {
	ps := fixture()
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(Paginate(ps, 0, math.MaxInt)))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(Paginate(ps, 0, math.MaxInt-2)))
	assert.Empty(t, Paginate(ps, 1, math.MaxInt))
	assert.Empty(t, Paginate(ps, math.MaxInt, math.MaxInt))
	assert.Empty(t, Paginate(ps, math.MaxInt, 1))
}
