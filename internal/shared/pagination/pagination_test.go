package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		name               string
		page, limit, total int
		wantStart, wantEnd int
		wantPages          int
	}{
		{name: "first page of three items", page: 1, limit: 10, total: 3, wantStart: 0, wantEnd: 3, wantPages: 1},
		{name: "second partial page", page: 2, limit: 2, total: 3, wantStart: 2, wantEnd: 3, wantPages: 2},
		{name: "page past the end", page: 5, limit: 10, total: 3, wantStart: 3, wantEnd: 3, wantPages: 1},
		{name: "empty collection", page: 1, limit: 10, total: 0, wantStart: 0, wantEnd: 0, wantPages: 0},
		{name: "exact multiple", page: 3, limit: 5, total: 15, wantStart: 10, wantEnd: 15, wantPages: 3},
		{name: "zero limit", page: 1, limit: 0, total: 3, wantStart: 0, wantEnd: 0, wantPages: 0},
		{name: "negative limit", page: 1, limit: -4, total: 3, wantStart: 0, wantEnd: 0, wantPages: 0},
		{name: "zero page", page: 0, limit: 2, total: 3, wantStart: 0, wantEnd: 0, wantPages: 2},
		{name: "negative page", page: -1, limit: 10, total: 3, wantStart: 0, wantEnd: 0, wantPages: 1},
		{name: "negative total", page: 1, limit: 10, total: -1, wantStart: 0, wantEnd: 0, wantPages: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := Calculate(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.wantStart, w.Start)
			assert.Equal(t, tc.wantEnd, w.End)
			assert.Equal(t, tc.wantPages, w.Pages)
		})
	}
}

func TestCalculateHugePageDoesNotOverflow(t *testing.T) {
	w := Calculate(math.MaxInt, math.MaxInt/2, 7)
	require.Equal(t, 7, w.Start)
	require.Equal(t, 7, w.End)
	require.Equal(t, 1, w.Pages)
}

func TestCalculateMatchesFormula(t *testing.T) {
	for total := 0; total <= 12; total++ {
		for limit := 1; limit <= 5; limit++ {
			for page := 1; page <= 6; page++ {
				w := Calculate(page, limit, total)
				offset := (page - 1) * limit
				want := total - offset
				if want < 0 {
					want = 0
				}
				if want > limit {
					want = limit
				}
				require.Equal(t, want, w.Len(), "page=%d limit=%d total=%d", page, limit, total)
				require.Equal(t, int(math.Ceil(float64(total)/float64(limit))), w.Pages)
				require.LessOrEqual(t, w.Len(), limit)
			}
		}
	}
}

func TestSliceNeverReturnsNilItems(t *testing.T) {
	p := Slice([]string{"a", "b", "c"}, 4, 10)
	require.NotNil(t, p.Items)
	require.Empty(t, p.Items)
	require.Equal(t, 3, p.Total)
	require.Equal(t, 4, p.Page)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 1, p.Pages)
}

func TestSliceCopiesWindow(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}
	p := Slice(all, 2, 2)
	require.Equal(t, []int{3, 4}, p.Items)

	p.Items[0] = 99
	require.Equal(t, 3, all[2])
}

func TestMapKeepsMetadata(t *testing.T) {
	p := Slice([]int{1, 2, 3}, 1, 2)
	mapped := Map(p, func(v int) string { return string(rune('a' + v - 1)) })
	require.Equal(t, []string{"a", "b"}, mapped.Items)
	require.Equal(t, p.Total, mapped.Total)
	require.Equal(t, p.Pages, mapped.Pages)
}
