// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package engine

import (
	"fmt"
	"time"

	"github.com/ochre3d/engine/ecs"
	"github.com/ochre3d/engine/rgraph"
	"github.com/ochre3d/engine/terrain"
)

// Director is the engine's callback into the application. It is expected
// to be implemented by the host and registered with SetDirector:
//
//	eng := engine.New(engine.Title("demo"))
//	eng.SetDirector(app)
//	eng.Action()
type Director interface {
	// Update lets the application mutate entities/components before the
	// next graph execute. dt is the time elapsed since the previous
	// Update call.
	Update(eng *Engine, dt time.Duration)
}

// Engine wires the entity-component database, the render graph, and the
// terrain quadtree into one timestepped update/execute loop, and tracks
// per-loop Timing the way the teacher's own engine does.
type Engine struct {
	cfg      Config
	entities *ecs.Database
	graph    *rgraph.Graph
	terrain  *terrain.Tree
	director Director
	clock    Clock
	Timing   Timing

	running bool
}

// Clock returns the current time; tests substitute a fake clock so frame
// timing is deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// New creates an Engine configured by attrs, with a fresh entity database,
// an empty render graph, and a terrain quadtree sized per Config.
func New(attrs ...Attr) *Engine {
	cfg := configDefaults
	for _, attr := range attrs {
		attr(&cfg)
	}
	return &Engine{
		cfg:      cfg,
		entities: ecs.NewDatabase(cfg.maxEntities),
		graph:    rgraph.NewGraph(),
		terrain:  terrain.NewTree(cfg.terrainSize, cfg.terrainLodDist),
		clock:    systemClock{},
	}
}

// Entities returns the engine's entity-component database.
func (e *Engine) Entities() *ecs.Database { return e.entities }

// Graph returns the engine's render graph, for the host to wire nodes into
// before calling Verify/Action.
func (e *Engine) Graph() *rgraph.Graph { return e.graph }

// Terrain returns the engine's terrain quadtree.
func (e *Engine) Terrain() *terrain.Tree { return e.terrain }

// SetDirector registers the application callback driven every Update.
func (e *Engine) SetDirector(d Director) { e.director = d }

// SetClock overrides the time source Action uses to compute delta time,
// for deterministic tests.
func (e *Engine) SetClock(c Clock) { e.clock = c }

// Verify prepares the render graph, surfacing a cycle or other structural
// error before the main loop starts rather than failing silently on the
// first Execute.
func (e *Engine) Verify() error {
	if err := e.graph.PrepareGraph(); err != nil {
		return fmt.Errorf("engine: verify: %w", err)
	}
	return nil
}

// Action runs the update/execute loop until Shutdown is called. Each
// iteration: Director.Update mutates entities/components, the render graph
// executes once, and Timing is updated.
func (e *Engine) Action() error {
	if e.director == nil {
		return fmt.Errorf("engine: Action called with no Director set")
	}
	if err := e.Verify(); err != nil {
		return err
	}

	e.running = true
	last := e.clock.Now()
	for e.running {
		now := e.clock.Now()
		dt := now.Sub(last)
		last = now

		updateStart := e.clock.Now()
		e.director.Update(e, dt)
		e.Timing.Update = e.clock.Now().Sub(updateStart)

		if err := e.graph.Execute(); err != nil {
			return fmt.Errorf("engine: execute: %w", err)
		}
		e.Timing.Renders++
		e.Timing.Elapsed += dt
	}
	return nil
}

// Shutdown stops Action's loop after the current iteration completes.
func (e *Engine) Shutdown() { e.running = false }
