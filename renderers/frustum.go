// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package renderers submits, sorts, and draws Renderables through shared
// queue machinery, specialized per kind of draw (mesh, terrain, particles,
// 2D) and a shadow subgraph that reuses the mesh and terrain renderers
// against light-space view/projection matrices.
package renderers

import "github.com/ochre3d/engine/math/lin"

// Frustum holds the six clip planes of a view-projection matrix, each
// stored as ax+by+cz+d with (a,b,c) the unit normal. UpdateFrustum must be
// called whenever the camera's view or projection changes before the
// frustum is used to filter renderables.
//
// See https://cgvr.cs.uni-bremen.de/teaching/cg_literatur/lighthouse3d_view_frustum_culling/index.html
type Frustum struct {
	planes [6]lin.V4
}

const (
	planeLeft = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
)

// UpdateFrustum derives the six frustum planes from vp, a camera's combined
// view-projection matrix, and normalizes each plane's (a,b,c) to unit
// length.
func (f *Frustum) UpdateFrustum(vp *lin.M4) *Frustum {
	// math/lin's M4 names fields by axis (Xx,Xy,Xz,Xw / Yx,... / Zx,... /
	// Wx,Wy,Wz,Ww) so that x' = x*Xx + y*Yx + z*Zx + Wx, etc. (see
	// matrix.go's transform comment). The row that produces a given output
	// component is therefore the *-suffixed column across all four groups,
	// not one axis group.
	row0 := lin.V4{X: vp.Xx, Y: vp.Yx, Z: vp.Zx, W: vp.Wx} // produces x'
	row1 := lin.V4{X: vp.Xy, Y: vp.Yy, Z: vp.Zy, W: vp.Wy} // produces y'
	row2 := lin.V4{X: vp.Xz, Y: vp.Yz, Z: vp.Zz, W: vp.Wz} // produces z'
	row3 := lin.V4{X: vp.Xw, Y: vp.Yw, Z: vp.Zw, W: vp.Ww} // produces w'

	f.planes[planeLeft] = addV4(row3, row0)
	f.planes[planeRight] = subV4(row3, row0)
	f.planes[planeBottom] = addV4(row3, row1)
	f.planes[planeTop] = subV4(row3, row1)
	f.planes[planeNear] = addV4(row3, row2)
	f.planes[planeFar] = subV4(row3, row2)

	for i := range f.planes {
		p := f.planes[i]
		length := (&lin.V3{X: p.X, Y: p.Y, Z: p.Z}).Len()
		if length > lin.Epsilon {
			f.planes[i] = lin.V4{X: p.X / length, Y: p.Y / length, Z: p.Z / length, W: p.W / length}
		}
	}
	return f
}

func addV4(a, b lin.V4) lin.V4 { return lin.V4{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W} }
func subV4(a, b lin.V4) lin.V4 { return lin.V4{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W} }

// Bounded is anything with an axis-aligned bounding box in world space.
type Bounded interface {
	Bounds() (min, max lin.V3)
}

// ShouldBeRendered tests r's AABB against every frustum plane, picking the
// positive vertex (the corner furthest along each plane's normal) and
// culling if that vertex's signed distance to the plane is negative.
func (f *Frustum) ShouldBeRendered(r Bounded) bool {
	min, max := r.Bounds()
	for _, p := range f.planes {
		px, py, pz := min.X, min.Y, min.Z
		if p.X >= 0 {
			px = max.X
		}
		if p.Y >= 0 {
			py = max.Y
		}
		if p.Z >= 0 {
			pz = max.Z
		}
		if p.X*px+p.Y*py+p.Z*pz+p.W < 0 {
			return false
		}
	}
	return true
}
