// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ecs

import "testing"

type position struct{ x, y, z float64 }
type velocity struct{ dx, dy, dz float64 }

type spySystem struct {
	newEntities    []Entity
	removeEntities []Entity
}

func (s *spySystem) OnNewEntity(e Entity)    { s.newEntities = append(s.newEntities, e) }
func (s *spySystem) OnRemoveEntity(e Entity) { s.removeEntities = append(s.removeEntities, e) }
func (s *spySystem) Update(db *Database)     {}

func TestAddComponentRequiresRegisteredTable(t *testing.T) {
	db := NewDatabase(16)
	e := db.AddEntity()
	if ptr := AddComponent(db, e, position{1, 2, 3}); ptr != nil {
		t.Errorf("expecting AddComponent to fail without a registered table")
	}
}

func TestAddGetHasComponent(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	e := db.AddEntity()

	AddComponent(db, e, position{1, 2, 3})
	if !HasComponent[position](db, e) {
		t.Errorf("expecting entity to have a position")
	}
	got := GetComponent[position](db, e)
	if got == nil || *got != (position{1, 2, 3}) {
		t.Errorf("expecting position{1,2,3}, got %v", got)
	}
}

func TestAddComponentToNullEntityFails(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	if ptr := AddComponent(db, NullEntity, position{}); ptr != nil {
		t.Errorf("expecting AddComponent on NullEntity to fail")
	}
}

func TestRemoveComponentClearsMaskBit(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	e := db.AddEntity()
	AddComponent(db, e, position{})

	RemoveComponent[position](db, e)
	if HasComponent[position](db, e) {
		t.Errorf("expecting position to be gone after RemoveComponent")
	}
}

func TestRemoveEntityErasesAllItsComponents(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	AddComponentTable[velocity](db, 16)
	e := db.AddEntity()
	AddComponent(db, e, position{})
	AddComponent(db, e, velocity{})

	db.RemoveEntity(e)

	if HasComponent[position](db, e) || HasComponent[velocity](db, e) {
		t.Errorf("expecting all components gone after RemoveEntity")
	}
	if db.entities.valid(e) {
		t.Errorf("expecting entity itself invalid after RemoveEntity")
	}
}

func TestSystemNotifiedOnlyForMaskedComponentChanges(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	AddComponentTable[velocity](db, 16)
	posID := TypeID[position](db)

	spy := &spySystem{}
	db.AddSystem(spy, MaskOf(posID))

	e := db.AddEntity()
	AddComponent(db, e, velocity{}) // not in spy's mask.
	if len(spy.newEntities) != 0 {
		t.Fatalf("expecting no notification for an unmasked component, got %v", spy.newEntities)
	}

	AddComponent(db, e, position{}) // in spy's mask.
	if len(spy.newEntities) != 1 || spy.newEntities[0] != e {
		t.Fatalf("expecting one notification for entity %d, got %v", e, spy.newEntities)
	}

	RemoveComponent[position](db, e)
	if len(spy.removeEntities) != 1 || spy.removeEntities[0] != e {
		t.Fatalf("expecting one removal notification for entity %d, got %v", e, spy.removeEntities)
	}
}

func TestRemoveEntityNotifiesSystemsForEachOwnedComponent(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	posID := TypeID[position](db)

	spy := &spySystem{}
	db.AddSystem(spy, MaskOf(posID))

	e := db.AddEntity()
	AddComponent(db, e, position{})
	db.RemoveEntity(e)

	if len(spy.removeEntities) != 1 || spy.removeEntities[0] != e {
		t.Errorf("expecting removal notification on RemoveEntity, got %v", spy.removeEntities)
	}
}

func TestAddSystemIsIdempotentAndUpdatesMask(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	AddComponentTable[velocity](db, 16)
	posID := TypeID[position](db)
	velID := TypeID[velocity](db)

	spy := &spySystem{}
	db.AddSystem(spy, MaskOf(posID))
	db.AddSystem(spy, MaskOf(velID)) // re-registering updates the mask.

	if len(db.systems) != 1 {
		t.Fatalf("expecting a single system entry, got %d", len(db.systems))
	}
	if !db.SystemMask(spy).Test(velID) || db.SystemMask(spy).Test(posID) {
		t.Errorf("expecting re-registration to replace the mask")
	}
}

func TestRemoveSystemStopsNotifications(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	posID := TypeID[position](db)

	spy := &spySystem{}
	db.AddSystem(spy, MaskOf(posID))
	db.RemoveSystem(spy)

	e := db.AddEntity()
	AddComponent(db, e, position{})
	if len(spy.newEntities) != 0 {
		t.Errorf("expecting no notifications after RemoveSystem, got %v", spy.newEntities)
	}
}

func TestIterateEntitiesVisitsAllLiveEntities(t *testing.T) {
	db := NewDatabase(16)
	a := db.AddEntity()
	b := db.AddEntity()
	c := db.AddEntity()
	db.RemoveEntity(b)

	var seen []Entity
	db.IterateEntities(func(e Entity) { seen = append(seen, e) })

	if len(seen) != 2 || seen[0] != a || seen[1] != c {
		t.Errorf("expecting [%d %d], got %v", a, c, seen)
	}
}

func TestIterateComponents2VisitsEntitiesWithBoth(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	AddComponentTable[velocity](db, 16)

	both := db.AddEntity()
	AddComponent(db, both, position{x: 1})
	AddComponent(db, both, velocity{dx: 2})

	onlyPos := db.AddEntity()
	AddComponent(db, onlyPos, position{x: 9})

	count := 0
	IterateComponents2(db, func(e Entity, p *position, v *velocity) {
		count++
		if e != both {
			t.Errorf("expecting only %d to have both components, got %d", both, e)
		}
	})
	if count != 1 {
		t.Errorf("expecting exactly 1 entity with both components, got %d", count)
	}
}

func TestGetEntityReverseLookup(t *testing.T) {
	db := NewDatabase(16)
	AddComponentTable[position](db, 16)
	e := db.AddEntity()
	ptr := AddComponent(db, e, position{x: 5})

	if got := GetEntity(db, ptr); got != e {
		t.Errorf("expecting GetEntity to return %d, got %d", e, got)
	}
}
