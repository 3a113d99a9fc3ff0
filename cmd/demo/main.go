// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command demo runs a headless scene exercising the entity-component
// database, the render graph, and the terrain quadtree together for a
// handful of simulated frames, the way the teacher's eg/ examples drive
// the engine without any windowing backend attached.
package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ochre3d/engine/ecs"
	"github.com/ochre3d/engine/engine"
	"github.com/ochre3d/engine/rgraph"
	"github.com/ochre3d/engine/terrain"
)

// Position is a world-space transform component.
type Position struct {
	X, Y, Z float64
}

// Velocity drives Position forward each Update.
type Velocity struct {
	DX, DY, DZ float64
}

// moveSystem advances every entity with both Position and Velocity, and
// counts the add/remove notifications it receives for either component.
type moveSystem struct {
	tracked int
}

func (s *moveSystem) OnNewEntity(e ecs.Entity)    { s.tracked++ }
func (s *moveSystem) OnRemoveEntity(e ecs.Entity) { s.tracked-- }

func (s *moveSystem) Update(db *ecs.Database) {
	ecs.IterateComponents2[Position, Velocity](db, func(e ecs.Entity, p *Position, v *Velocity) {
		p.X += v.DX
		p.Y += v.DY
		p.Z += v.DZ
	})
}

// noopNode is a pass-through BindableRenderNode standing in for a real
// backend-bound renderer in this headless demo.
type noopNode struct {
	rgraph.BindableRenderNode
	ran int
}

func newNoopNode(name string) *noopNode {
	return &noopNode{BindableRenderNode: rgraph.NewBindableRenderNode(name)}
}

func (n *noopNode) Execute() { n.ran++ }

type director struct {
	move  *moveSystem
	frame int
}

func (d *director) Update(eng *engine.Engine, dt time.Duration) {
	db := eng.Entities()
	d.frame++

	if d.frame == 1 {
		for i := 0; i < 3; i++ {
			e := db.AddEntity()
			ecs.AddComponent(db, e, Position{X: float64(i) * 10})
			ecs.AddComponent(db, e, Velocity{DX: 1, DY: 0, DZ: 0})
		}
	}

	eng.Terrain().UpdateHighestLodLocation(0, 0, 0)
	d.move.Update(db)
}

func main() {
	eng := engine.New(
		engine.Title("headless demo"),
		engine.MaxEntities(1024),
		engine.TerrainSize(1000),
		engine.TerrainLodDistances([]float64{500, 250, 125}),
	)

	db := eng.Entities()
	ecs.AddComponentTable[Position](db, 1024)
	ecs.AddComponentTable[Velocity](db, 1024)

	node := newNoopNode("present")
	eng.Graph().AddNode(node)

	move := &moveSystem{}
	db.AddSystem(move, ecs.MaskOf(ecs.TypeID[Position](db), ecs.TypeID[Velocity](db)))

	d := &director{move: move}
	eng.SetDirector(d)

	var lastFrame int
	for i := 0; i < 5; i++ {
		d.Update(eng, 16*time.Millisecond)
		if err := eng.Graph().PrepareGraph(); err != nil {
			slog.Error("demo: prepare graph failed", "error", err)
			return
		}
		if err := eng.Graph().Execute(); err != nil {
			slog.Error("demo: execute failed", "error", err)
			return
		}
		lastFrame = i
	}

	leaves := 0
	eng.Terrain().Walk(func(_ terrain.Leaf) {
		leaves++
	})

	fmt.Printf("ran %d frames, node executed %d times, %d terrain leaves\n", lastFrame+1, node.ran, leaves)
}
