// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"testing"

	"github.com/ochre3d/engine/math/lin"
)

type boundedBox struct{ min, max lin.V3 }

func (b boundedBox) Bounds() (min, max lin.V3) { return b.min, b.max }

func identityPerspective() *lin.M4 {
	return lin.NewM4I().Persp(60, 1, 0.1, 100)
}

func TestFrustumAcceptsOriginFacingBox(t *testing.T) {
	var f Frustum
	vp := identityPerspective()
	f.UpdateFrustum(vp)

	inView := boundedBox{min: lin.V3{X: -0.1, Y: -0.1, Z: -5.1}, max: lin.V3{X: 0.1, Y: 0.1, Z: -4.9}}
	if !f.ShouldBeRendered(inView) {
		t.Errorf("expecting a small box in front of the camera to be accepted")
	}
}

func TestFrustumRejectsBoxBehindCamera(t *testing.T) {
	var f Frustum
	vp := identityPerspective()
	f.UpdateFrustum(vp)

	behind := boundedBox{min: lin.V3{X: -0.1, Y: -0.1, Z: 4.9}, max: lin.V3{X: 0.1, Y: 0.1, Z: 5.1}}
	if f.ShouldBeRendered(behind) {
		t.Errorf("expecting a box behind the camera (positive Z, right-handed view space) to be rejected")
	}
}

func TestFrustumRejectsBoxBeyondFarPlane(t *testing.T) {
	var f Frustum
	vp := identityPerspective()
	f.UpdateFrustum(vp)

	farAway := boundedBox{min: lin.V3{X: -0.1, Y: -0.1, Z: -1000.1}, max: lin.V3{X: 0.1, Y: 0.1, Z: -999.9}}
	if f.ShouldBeRendered(farAway) {
		t.Errorf("expecting a box beyond the far plane to be rejected")
	}
}

func TestFrustumPlanesAreNormalized(t *testing.T) {
	var f Frustum
	vp := identityPerspective()
	f.UpdateFrustum(vp)

	for i, p := range f.planes {
		n := (&lin.V3{X: p.X, Y: p.Y, Z: p.Z}).Len()
		if n < 0.99 || n > 1.01 {
			t.Errorf("plane %d normal length = %v, want ~1", i, n)
		}
	}
}
