// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package ecs

import "reflect"

// Database is a fixed-capacity entity-component store. Component tables
// are registered by type with AddComponentTable before first use; entities
// are rows keyed across whichever tables they have entries in.
type Database struct {
	entities *entityPool
	masks    map[Entity]ComponentMask

	tables     map[ComponentTypeId]table
	typeToID   map[reflect.Type]ComponentTypeId
	nextTypeID ComponentTypeId

	systems []*systemEntry
}

// NewDatabase creates a Database holding at most maxEntities live entities
// at once. AddEntity returns NullEntity once that bound is reached.
func NewDatabase(maxEntities uint32) *Database {
	return &Database{
		entities: newEntityPool(maxEntities),
		masks:    make(map[Entity]ComponentMask),
		tables:   make(map[ComponentTypeId]table),
		typeToID: make(map[reflect.Type]ComponentTypeId),
	}
}

// AddEntity allocates a fresh entity, or NullEntity if the database is at
// capacity and has nothing queued for reuse.
func (db *Database) AddEntity() Entity {
	e := db.entities.create()
	if e != NullEntity {
		db.masks[e] = ComponentMask{}
	}
	return e
}

// RemoveEntity erases every component e owns across all tables, notifying
// interested Systems, then returns e's id to the free list.
func (db *Database) RemoveEntity(e Entity) {
	if !db.entities.valid(e) {
		return
	}
	mask := db.masks[e]
	for id, tbl := range db.tables {
		if !mask.Test(id) {
			continue
		}
		db.notify(id, e, false)
		tbl.erase(e)
	}
	delete(db.masks, e)
	db.entities.dispose(e)
}

// IterateEntities calls fn(e) for every active entity, in ascending id
// order.
func (db *Database) IterateEntities(fn func(Entity)) {
	db.entities.each(fn)
}

// AddSystem registers system under mask, or updates its mask if it is
// already registered. Registration is idempotent.
func (db *Database) AddSystem(system System, mask ComponentMask) {
	for _, se := range db.systems {
		if se.system == system {
			se.mask = mask
			return
		}
	}
	db.systems = append(db.systems, &systemEntry{system: system, mask: mask})
}

// RemoveSystem unregisters system. No-op if it was never registered.
func (db *Database) RemoveSystem(system System) {
	for i, se := range db.systems {
		if se.system == system {
			db.systems = append(db.systems[:i], db.systems[i+1:]...)
			return
		}
	}
}

// SystemMask returns the ComponentMask system was registered with, or the
// zero mask if it is not registered.
func (db *Database) SystemMask(system System) ComponentMask {
	for _, se := range db.systems {
		if se.system == system {
			return se.mask
		}
	}
	return ComponentMask{}
}

// notify fires OnNewEntity/OnRemoveEntity on every System whose mask
// includes typeID, matching the original EntityDatabase: a System is
// notified whenever any component within its own mask changes on e, not
// only once e satisfies the System's full mask.
func (db *Database) notify(typeID ComponentTypeId, e Entity, added bool) {
	for _, se := range db.systems {
		if !se.mask.Test(typeID) {
			continue
		}
		if added {
			se.system.OnNewEntity(e)
		} else {
			se.system.OnRemoveEntity(e)
		}
	}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// componentTypeID returns T's id, registering a fresh one on first use.
func componentTypeID[T any](db *Database) ComponentTypeId {
	key := typeKey[T]()
	if id, ok := db.typeToID[key]; ok {
		return id
	}
	id := db.nextTypeID
	db.nextTypeID++
	db.typeToID[key] = id
	return id
}

// AddComponentTable registers storage for component type T with the given
// capacity. It must be called before any AddComponent[T]/GetComponent[T]
// call. T may be a struct (packed value storage) or an interface
// (polymorphic storage, since Go already boxes interface values).
func AddComponentTable[T any](db *Database, capacity int) *Table[T] {
	id := componentTypeID[T](db)
	t := NewTable[T](capacity)
	db.tables[id] = t
	return t
}

func tableFor[T any](db *Database) (*Table[T], ComponentTypeId, bool) {
	key := typeKey[T]()
	id, ok := db.typeToID[key]
	if !ok {
		return nil, 0, false
	}
	tbl, ok := db.tables[id].(*Table[T])
	return tbl, id, ok
}

// AddComponent inserts value into T's table under e, sets e's mask bit,
// and notifies interested Systems. Returns nil if e is NullEntity, no
// table was registered for T, the table is full, or e already has a T.
func AddComponent[T any](db *Database, e Entity, value T) *T {
	if e == NullEntity {
		return nil
	}
	tbl, id, ok := tableFor[T](db)
	if !ok {
		return nil
	}
	ptr := tbl.insert(e, value)
	if ptr == nil {
		return nil
	}
	mask := db.masks[e]
	mask.set(id)
	db.masks[e] = mask
	db.notify(id, e, true)
	return ptr
}

// EmplaceComponent constructs a T via build and inserts it, a convenience
// for components expensive or awkward to construct as a literal.
func EmplaceComponent[T any](db *Database, e Entity, build func() T) *T {
	return AddComponent(db, e, build())
}

// GetComponent returns e's T, or nil if it has none. The pointer is valid
// until the next mutation of T's table or removal of e.
func GetComponent[T any](db *Database, e Entity) *T {
	tbl, _, ok := tableFor[T](db)
	if !ok {
		return nil
	}
	return tbl.get(e)
}

// HasComponent reports whether e currently has a T.
func HasComponent[T any](db *Database, e Entity) bool {
	tbl, _, ok := tableFor[T](db)
	if !ok {
		return false
	}
	return tbl.has(e)
}

// HasComponents reports whether e has a component of every given type.
func (db *Database) HasComponents(e Entity, ids ...ComponentTypeId) bool {
	mask := db.masks[e]
	for _, id := range ids {
		if !mask.Test(id) {
			return false
		}
	}
	return true
}

// TypeID returns T's ComponentTypeId, registering one if T has no table
// yet. Used to build a System's interest mask with MaskOf.
func TypeID[T any](db *Database) ComponentTypeId {
	return componentTypeID[T](db)
}

// RemoveComponent notifies interested Systems, then erases e's T and
// clears its mask bit. No-op if e has no T.
func RemoveComponent[T any](db *Database, e Entity) {
	tbl, id, ok := tableFor[T](db)
	if !ok || !tbl.has(e) {
		return
	}
	db.notify(id, e, false)
	tbl.erase(e)
	mask := db.masks[e]
	mask.clear(id)
	db.masks[e] = mask
}

// GetEntity reverse-looks-up the entity owning a live component pointer
// from T's table, or NullEntity if ptr is stale or foreign.
func GetEntity[T any](db *Database, ptr *T) Entity {
	tbl, _, ok := tableFor[T](db)
	if !ok {
		return NullEntity
	}
	return tbl.entityOf(ptr)
}

// IterateComponents calls fn(e, *T) for every entity with a live T.
func IterateComponents[T any](db *Database, fn func(Entity, *T)) {
	tbl, _, ok := tableFor[T](db)
	if !ok {
		return
	}
	tbl.each(fn)
}

// HasComponents2 reports whether e currently has both an A and a B. Go
// generic methods can't take their own type parameters, so arity-specific
// free functions stand in for the C++ API's hasComponents<Ts...>(e).
func HasComponents2[A, B any](db *Database, e Entity) bool {
	return HasComponent[A](db, e) && HasComponent[B](db, e)
}

// GetComponents2 returns e's A and B, each nil if absent.
func GetComponents2[A, B any](db *Database, e Entity) (*A, *B) {
	return GetComponent[A](db, e), GetComponent[B](db, e)
}

// IterateComponents2 calls fn(e, *A, *B) for every entity with a live A and
// B, iterating whichever of the two tables is smaller.
func IterateComponents2[A, B any](db *Database, fn func(Entity, *A, *B)) {
	ta, _, ok := tableFor[A](db)
	if !ok {
		return
	}
	tb, _, ok := tableFor[B](db)
	if !ok {
		return
	}
	if len(ta.items) <= len(tb.items) {
		ta.each(func(e Entity, a *A) {
			if b := tb.get(e); b != nil {
				fn(e, a, b)
			}
		})
		return
	}
	tb.each(func(e Entity, b *B) {
		if a := ta.get(e); a != nil {
			fn(e, a, b)
		}
	})
}
