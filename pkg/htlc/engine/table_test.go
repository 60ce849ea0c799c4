package engine

import "testing"

func TestTable_KeepsInsertionOrderAcrossReplaceAndRemove(t *testing.T) {
	tbl := newTable[int]()
	tbl.put("a", 1)
	tbl.put("b", 2)
	tbl.put("c", 3)
	tbl.put("a", 10)
	tbl.remove("b")
	tbl.remove("missing")

	var got []int
	tbl.each(func(v int) bool {
		got = append(got, v)
		return true
	})
	if len(got) != 2 || got[0] != 10 || got[1] != 3 {
		t.Fatalf("unexpected iteration order: %v", got)
	}
	if tbl.len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.len())
	}
}

func TestTable_Page(t *testing.T) {
	tbl := newTable[int]()
	for i, k := range []string{"a", "b", "c", "d", "e"} {
		tbl.put(k, i)
	}
	even := func(v int) bool { return v%2 == 0 }

	tests := []struct {
		name          string
		offset, limit int
		keep          func(int) bool
		want          []int
	}{
		{"all", 0, 10, nil, []int{0, 1, 2, 3, 4}},
		{"window", 1, 2, nil, []int{1, 2}},
		{"filtered", 1, 5, even, []int{2, 4}},
		{"offset past end", 9, 5, nil, []int{}},
		{"zero limit", 0, 0, nil, []int{}},
		{"negative offset", -3, 1, nil, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.page(tt.offset, tt.limit, tt.keep)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestGuard(t *testing.T) {
	g := newGuard()
	if g.held("x") {
		t.Fatal("empty guard reports held")
	}
	g.acquire("x")
	if !g.held("x") || g.held("y") {
		t.Fatal("unexpected guard state after acquire")
	}
	g.release("x")
	if g.held("x") {
		t.Fatal("guard still held after release")
	}
}
