package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		page       int
		wantOffset uint64
	}{
		{page: 1, wantOffset: 0},
		{page: 2, wantOffset: 9},
		{page: 3, wantOffset: 18},
		{page: 10, wantOffset: 81},
		{page: 0, wantOffset: 0},
		{page: -5, wantOffset: 0},
	}

	for _, tc := range cases {
		offset, limit := CalculateOffsetLimit(tc.page)
		if offset != tc.wantOffset {
			t.Fatalf("page %d: expected offset %d, but got %d", tc.page, tc.wantOffset, offset)
		}
		if limit != CoursePageSize {
			t.Fatalf("page %d: expected limit %d, but got %d", tc.page, CoursePageSize, limit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{total: 0, want: 0},
		{total: -1, want: 0},
		{total: 1, want: 1},
		{total: 9, want: 1},
		{total: 10, want: 2},
		{total: 18, want: 2},
		{total: 19, want: 3},
		{total: 100, want: 12},
	}

	for _, tc := range cases {
		if got := TotalPages(tc.total); got != tc.want {
			t.Fatalf("total %d: expected %d pages, but got %d", tc.total, tc.want, got)
		}
	}
}
