// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package renderers

import (
	"fmt"
	"sort"
)

// Filter decides whether a Renderable should be submitted for drawing at
// all, e.g. Frustum's ShouldBeRendered.
type Filter interface {
	ShouldBeRendered(r Bounded) bool
}

// Pass is the draw-state grouping key a queued renderable is sorted under
// (a shader program, a material, a framebuffer target...). Passes are
// compared by identity, not value.
type Pass interface{}

// entry pairs one submitted renderable with the pass it was submitted
// under.
type entry struct {
	renderable any
	pass       Pass
}

// Queue is the submit/sort/render/clear skeleton shared by every renderer
// kind (mesh, terrain, particles, 2D): renderables are submitted under a
// pass, sorted so identical passes are contiguous, rendered by binding each
// new pass exactly once, then cleared for the next frame.
type Queue struct {
	filters []Filter
	entries []entry
}

// NewQueue creates an empty queue that rejects any submission failing one
// of filters.
func NewQueue(filters ...Filter) *Queue {
	return &Queue{filters: filters}
}

// Submit enqueues renderable under pass unless bounded is non-nil and a
// filter rejects it. bounded may be nil for renderables that don't support
// (or don't need) frustum culling, e.g. screen-space 2D sprites.
func (q *Queue) Submit(renderable any, pass Pass, bounded Bounded) {
	if bounded != nil {
		for _, f := range q.filters {
			if !f.ShouldBeRendered(bounded) {
				return
			}
		}
	}
	q.entries = append(q.entries, entry{renderable: renderable, pass: pass})
}

// SortQueue groups entries by pass, preserving submission order within a
// pass. Passes are ordered by their identity's pointer-address string so
// the grouping is stable and deterministic from one frame to the next.
func (q *Queue) SortQueue() {
	sort.SliceStable(q.entries, func(i, j int) bool {
		return passKey(q.entries[i].pass) < passKey(q.entries[j].pass)
	})
}

func passKey(p Pass) string { return fmt.Sprintf("%p", p) }

// Render walks the sorted queue, calling bindPass exactly once whenever the
// pass changes and drawRenderable for every entry under the currently bound
// pass.
func (q *Queue) Render(bindPass func(pass Pass), drawRenderable func(renderable any)) {
	var current Pass
	bound := false
	for _, e := range q.entries {
		if !bound || e.pass != current {
			current = e.pass
			bindPass(current)
			bound = true
		}
		drawRenderable(e.renderable)
	}
}

// ClearQueue empties the queue, ready for the next frame's submissions.
func (q *Queue) ClearQueue() { q.entries = q.entries[:0] }

// Len reports how many renderables are currently queued.
func (q *Queue) Len() int { return len(q.entries) }
