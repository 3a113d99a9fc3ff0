// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package physics describes the Body interface consumed by transform
// components that opt into motion. It is an external collaborator of the
// engine cores: spec.md §1 explicitly does not prescribe a physics
// algorithm, so this package only carries the shape a Mover implementation
// must satisfy to drive entity transforms, not a collision solver.
package physics

import "github.com/ochre3d/engine/math/lin"

// Body is a physics controlled shape and location. Bodies created by the
// application are pushed with forces; a Mover integrates those forces into
// updated world transforms that transform components read back each frame.
type Body interface {
	SetMaterial(mass, bounce float64) Body // Configure mass and restitution.
	SetWorld(world *lin.T)                 // Set the world transform backing store.
	World() *lin.T                         // Current world transform.
	Push(dx, dy, dz float64)               // Apply an impulse in world space.
	SetSolid(solid bool)                   // Toggle collision response.
}

// Mover simulates forces acting on a set of moving bodies. Expected usage
// is to call Step once per fixed timestep from the engine's update loop.
type Mover interface {
	SetGravity(gravity float64)
	Step(bodies []Body, timestep float64)

	// Cast checks for an intersection between a ray body and b,
	// without updating either body.
	Cast(ray, b Body) (hit bool, x, y, z float64)
}

// Shape names the collision shape of a Body. The package has no shape
// constructors; the concrete shapes and collision math are supplied by
// whichever Mover implementation the host links in.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
	ShapePlane
)
