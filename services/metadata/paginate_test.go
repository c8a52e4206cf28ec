package metadata

import "testing"

func TestPaginateFortyFiveItems(t *testing.T) {
	items := make([]int, 45)
	for i := range items {
		items[i] = i
	}

	wantLens := map[int]int{1: 20, 3: 5, 4: 0}
	for page, want := range wantLens {
		p := Paginate(items, page, 20)
		if len(p.Items) != want {
			t.Fatalf("page %d: expected %d items, got %d", page, want, len(p.Items))
		}
		if p.TotalPages != 3 {
			t.Fatalf("page %d: expected 3 total pages, got %d", page, p.TotalPages)
		}
		if p.Total != 45 {
			t.Fatalf("page %d: expected total 45, got %d", page, p.Total)
		}
	}

	if p := Paginate(items, 3, 20); p.Items[0] != 40 {
		t.Fatalf("expected page 3 to start at item 40, got %d", p.Items[0])
	}
}

func TestPaginateClampsPageAndSize(t *testing.T) {
	items := []string{"a", "b", "c"}
	p := Paginate(items, 0, 0)
	if p.Page != 1 || len(p.Items) != 3 || p.TotalPages != 1 {
		t.Fatalf("unexpected page: %+v", p)
	}
}

func TestPaginateEmpty(t *testing.T) {
	p := Paginate([]string{}, 1, 20)
	if p.Items == nil || len(p.Items) != 0 || p.TotalPages != 0 {
		t.Fatalf("expected empty non-nil page, got %+v", p)
	}
}

func TestPaginateHugePage(t *testing.T) {
	p := Paginate([]int{1, 2}, 1<<40, 20)
	if len(p.Items) != 0 {
		t.Fatalf("expected empty page, got %v", p.Items)
	}
}

func TestPaginateCopiesItems(t *testing.T) {
	items := []int{1, 2, 3}
	p := Paginate(items, 1, 2)
	p.Items[0] = 99
	if items[0] != 1 {
		t.Fatal("Paginate must not alias the input slice")
	}
}

func TestCapTotalPages(t *testing.T) {
	tests := map[int]int{-1: 0, 0: 0, 12: 12, 500: 500, 38211: 500}
	for input, want := range tests {
		if got := capTotalPages(input); got != want {
			t.Fatalf("capTotalPages(%d) = %d, want %d", input, got, want)
		}
	}
}
