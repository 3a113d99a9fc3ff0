// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ecs

import "testing"

func TestEmptyPoolInvalid(t *testing.T) {
	p := newEntityPool(8)
	if p.valid(NullEntity) {
		t.Errorf("expecting NullEntity to be invalid")
	}
	if p.valid(1) {
		t.Errorf("expecting unallocated entity to be invalid")
	}
}

func TestFirstCreateIsNotNull(t *testing.T) {
	p := newEntityPool(8)
	e := p.create()
	if e == NullEntity {
		t.Errorf("expecting first create to return a non-null entity")
	}
	if !p.valid(e) {
		t.Errorf("expecting freshly created entity to be valid")
	}
}

func TestCapacityExhaustion(t *testing.T) {
	p := newEntityPool(4)
	for i := 0; i < 4; i++ {
		if e := p.create(); e == NullEntity {
			t.Fatalf("expecting entity %d of 4 to be allocated", i)
		}
	}
	if e := p.create(); e != NullEntity {
		t.Errorf("expecting exhausted pool to return NullEntity, got %d", e)
	}
}

func TestDisposeInvalidatesAndQueuesForReuse(t *testing.T) {
	p := newEntityPool(4)
	e := p.create()
	p.dispose(e)
	if p.valid(e) {
		t.Errorf("expecting disposed entity to be invalid")
	}
	if len(p.free) != 1 {
		t.Errorf("expecting one freed slot, got %d", len(p.free))
	}
}

func TestDisposeThenReuseNeverReturnsEqualEntity(t *testing.T) {
	p := newEntityPool(4)
	for i := 0; i < maxFree+2; i++ {
		e := p.create()
		p.dispose(e)
	}
	seen := map[Entity]bool{}
	for i := 0; i < maxFree+2; i++ {
		e := p.create()
		if seen[e] {
			t.Fatalf("reused entity %d compared equal to a prior generation", e)
		}
		seen[e] = true
		p.dispose(e)
	}
}

func TestEachVisitsOnlyLiveEntitiesInAscendingOrder(t *testing.T) {
	p := newEntityPool(8)
	a := p.create()
	b := p.create()
	c := p.create()
	p.dispose(b)

	var seen []Entity
	p.each(func(e Entity) { seen = append(seen, e) })

	if len(seen) != 2 || seen[0] != a || seen[1] != c {
		t.Errorf("expecting [%d %d], got %v", a, c, seen)
	}
}
