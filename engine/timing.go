// Copyright © 2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package engine

import (
	"fmt"
	"time"
)

// Timing collects main-loop numbers while the engine's update loop is
// active. Values are reset on each Zero call; applications are expected to
// smooth these per-update values over a number of updates.
type Timing struct {
	Elapsed time.Duration // total loop time since last reset.
	Update  time.Duration // time used for the previous ecs/rgraph/terrain update.
	Renders int           // render (graph execute) requests since last reset.
}

// Zero resets all time and counter values.
func (t *Timing) Zero() {
	t.Update = 0
	t.Elapsed = 0
	t.Renders = 0
}

// Dump prints the currently tracked loop time in milliseconds.
func (t *Timing) Dump() {
	const milliseconds = 1000.0
	e := t.Elapsed.Seconds() * milliseconds
	u := t.Update.Seconds() * milliseconds
	fmt.Printf("E:%2.4f U:%2.4f #:%d\n", e, u, t.Renders)
}
