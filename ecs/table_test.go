// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ecs

import "testing"

func TestTableInsertGetHas(t *testing.T) {
	tbl := NewTable[int](4)
	ptr := tbl.insert(1, 42)
	if ptr == nil || *ptr != 42 {
		t.Fatalf("expecting inserted value 42, got %v", ptr)
	}
	if !tbl.has(1) {
		t.Errorf("expecting entity 1 to have an entry")
	}
	if got := tbl.get(1); got == nil || *got != 42 {
		t.Errorf("expecting get to return 42, got %v", got)
	}
}

func TestTableInsertDuplicateFails(t *testing.T) {
	tbl := NewTable[int](4)
	tbl.insert(1, 1)
	if ptr := tbl.insert(1, 2); ptr != nil {
		t.Errorf("expecting duplicate insert to fail")
	}
}

func TestTableFullFails(t *testing.T) {
	tbl := NewTable[int](2)
	tbl.insert(1, 1)
	tbl.insert(2, 2)
	if ptr := tbl.insert(3, 3); ptr != nil {
		t.Errorf("expecting insert into full table to fail")
	}
}

func TestTableEraseSwapsLastIntoSlot(t *testing.T) {
	tbl := NewTable[int](4)
	tbl.insert(1, 10)
	tbl.insert(2, 20)
	tbl.insert(3, 30)

	tbl.erase(1)

	if tbl.has(1) {
		t.Errorf("expecting entity 1 to be gone")
	}
	if got := tbl.get(2); got == nil || *got != 20 {
		t.Errorf("expecting entity 2 unaffected, got %v", got)
	}
	if got := tbl.get(3); got == nil || *got != 30 {
		t.Errorf("expecting entity 3 unaffected, got %v", got)
	}
	if len(tbl.items) != 2 {
		t.Errorf("expecting 2 remaining items, got %d", len(tbl.items))
	}
}

func TestTableEntityOfReverseLookup(t *testing.T) {
	tbl := NewTable[int](4)
	ptr := tbl.insert(7, 100)
	if e := tbl.entityOf(ptr); e != 7 {
		t.Errorf("expecting entityOf to return 7, got %d", e)
	}
}

func TestTableEntityOfStaleAfterErase(t *testing.T) {
	tbl := NewTable[int](4)
	ptr := tbl.insert(1, 1)
	tbl.insert(2, 2)
	tbl.erase(1)
	if e := tbl.entityOf(ptr); e != NullEntity {
		t.Errorf("expecting stale pointer to resolve to NullEntity, got %d", e)
	}
}

func TestTableEachVisitsEveryEntry(t *testing.T) {
	tbl := NewTable[int](4)
	tbl.insert(1, 10)
	tbl.insert(2, 20)
	tbl.insert(3, 30)

	seen := map[Entity]int{}
	tbl.each(func(e Entity, v *int) { seen[e] = *v })

	if len(seen) != 3 || seen[1] != 10 || seen[2] != 20 || seen[3] != 30 {
		t.Errorf("expecting {1:10 2:20 3:30}, got %v", seen)
	}
}
