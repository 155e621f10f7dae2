package storage

import (
	"sync"
	"testing"
)

type record struct {
	ID    int64
	Label string
}

func insertRecord(c *Collection[record], label string) record {
	return c.Insert(func(id int64) record {
		return record{ID: id, Label: label}
	})
}

func TestInsertAssignsIncreasingIDs(t *testing.T) {
	c := NewCollection[record]()

	var last int64
	for i := 0; i < 50; i++ {
		r := insertRecord(c, "x")
		if r.ID <= last {
			t.Fatalf("expected strictly increasing ids, got %d after %d", r.ID, last)
		}
		last = r.ID
	}
	if first := mustGet(t, c, 1); first.ID != 1 {
		t.Fatalf("expected first id to be 1, got %d", first.ID)
	}
}

func TestGetMissingReturnsErrNotFound(t *testing.T) {
	c := NewCollection[record]()
	if _, err := c.Get(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListFilters(t *testing.T) {
	c := NewCollection[record]()
	insertRecord(c, "a")
	insertRecord(c, "b")
	insertRecord(c, "a")

	all := c.List(nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	as := c.List(func(r record) bool { return r.Label == "a" })
	if len(as) != 2 {
		t.Fatalf("expected 2 filtered records, got %d", len(as))
	}
}

func TestUpdateIfRejectsWhenPredicateFails(t *testing.T) {
	c := NewCollection[record]()
	r := insertRecord(c, "a")

	updated, err := c.UpdateIf(r.ID,
		func(rec record) bool { return rec.Label == "a" },
		func(rec record) record { rec.Label = "b"; return rec })
	if err != nil {
		t.Fatalf("UpdateIf: %v", err)
	}
	if updated.Label != "b" {
		t.Fatalf("expected label b, got %s", updated.Label)
	}

	if _, err := c.UpdateIf(r.ID,
		func(rec record) bool { return rec.Label == "a" },
		func(rec record) record { rec.Label = "c"; return rec }); err != ErrConditionFailed {
		t.Fatalf("expected ErrConditionFailed, got %v", err)
	}
	if got := mustGet(t, c, r.ID); got.Label != "b" {
		t.Fatalf("rejected update must not mutate, got label %s", got.Label)
	}

	if _, err := c.UpdateIf(999, nil, func(rec record) record { return rec }); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentInsertsKeepIDsUnique(t *testing.T) {
	c := NewCollection[record]()

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			insertRecord(c, "x")
		}()
	}
	wg.Wait()

	if c.Len() != n {
		t.Fatalf("expected %d records, got %d", n, c.Len())
	}
	seen := make(map[int64]bool, n)
	for _, r := range c.List(nil) {
		if seen[r.ID] {
			t.Fatalf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}

func mustGet(t *testing.T, c *Collection[record], id int64) record {
	t.Helper()
	r, err := c.Get(id)
	if err != nil {
		t.Fatalf("Get(%d): %v", id, err)
	}
	return r
}
