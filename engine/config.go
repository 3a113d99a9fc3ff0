// SPDX-FileCopyrightText: © 2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

// Package engine ties the ecs.Database, rgraph.Graph, and terrain.Tree
// cores together into one per-frame update/render loop, the way the
// teacher's own top-level package wraps rendering, physics, and timing
// into a single Director callback.
package engine

// config.go reduces the New API footprint using functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Config holds the attributes an application can set before starting the
// engine's update loop.
type Config struct {
	title    string
	windowed bool
	x, y     int32
	w, h     int32

	r, g, b, a float32 // background clear colour.

	maxEntities uint32

	terrainSize      float64
	terrainLodDist   []float64
	shadowCasterCap  int
}

var configDefaults = Config{
	title:           "engine",
	windowed:        false,
	x:               0,
	y:               0,
	w:               800,
	h:               450,
	r:               0.0,
	g:               0.0,
	b:               0.0,
	a:               1.0,
	maxEntities:     4096,
	terrainSize:     1000,
	terrainLodDist:  []float64{500, 250, 125},
	shadowCasterCap: 14,
}

// Attr configures the engine at construction time.
//
//	eng := engine.New(
//	    engine.Title("demo"),
//	    engine.Size(200, 200, 900, 400),
//	    engine.Background(0.45, 0.45, 0.45, 1.0),
//	    engine.MaxEntities(8192),
//	)
type Attr func(*Config)

// Title sets the window title when using windowed mode.
func Title(t string) Attr { return func(c *Config) { c.title = t } }

// Size sets the window top-left corner location and size in pixels.
func Size(x, y, w, h int32) Attr {
	return func(c *Config) {
		if x >= 0 && x < 10_000 {
			c.x = x
		}
		if y >= 0 && y < 10_000 {
			c.y = y
		}
		if w > 10 && w < 10_000 {
			c.w = w
		}
		if h > 10 && h < 10_000 {
			c.h = h
		}
	}
}

// Windowed runs in a window instead of fullscreen.
func Windowed() Attr { return func(c *Config) { c.windowed = true } }

// Background sets the display clear colour.
func Background(r, g, b, a float32) Attr {
	return func(c *Config) { c.r, c.g, c.b, c.a = r, g, b, a }
}

// MaxEntities bounds the entity-component database's capacity.
func MaxEntities(n uint32) Attr { return func(c *Config) { c.maxEntities = n } }

// TerrainSize sets the quadtree's world-space footprint.
func TerrainSize(size float64) Attr { return func(c *Config) { c.terrainSize = size } }

// TerrainLodDistances sets the per-LOD split distances, nearest first.
func TerrainLodDistances(distances []float64) Attr {
	return func(c *Config) { c.terrainLodDist = distances }
}

// ShadowCasterCap records a shadow-caster cap in the Config. New builds no
// renderers.ShadowSubgraph, so the engine itself does not apply the value.
func ShadowCasterCap(n int) Attr { return func(c *Config) { c.shadowCasterCap = n } }
