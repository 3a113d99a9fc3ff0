// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rgraph

import (
	"fmt"
	"log/slog"
)

// Graph is a render graph: a set of named nodes wired by ports, sorted
// into a single execution order by PrepareGraph and walked by Execute.
type Graph struct {
	nodes    map[string]RenderNode
	order    []RenderNode
	prepared bool
}

// NewGraph creates an empty render graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]RenderNode)}
}

// AddNode installs node, failing if its name collides with an existing
// node. Invalidates any prior PrepareGraph result.
func (g *Graph) AddNode(node RenderNode) bool {
	if _, exists := g.nodes[node.Name()]; exists {
		slog.Error("rgraph: node name collision", "name", node.Name())
		return false
	}
	g.nodes[node.Name()] = node
	g.prepared = false
	return true
}

// RemoveNode disconnects every port touching node (its own inputs, and any
// other node's inputs connected to one of its outputs), then removes it.
// Safe to call on a prepared graph, but invalidates the sort.
func (g *Graph) RemoveNode(node RenderNode) {
	if _, exists := g.nodes[node.Name()]; !exists {
		return
	}
	for _, in := range node.Inputs() {
		in.Disconnect()
	}
	for _, other := range g.nodes {
		if other == node {
			continue
		}
		for _, in := range other.Inputs() {
			if out := in.ConnectedOutput(); out != nil && out.Owner().Name() == node.Name() {
				in.Disconnect()
			}
		}
	}
	delete(g.nodes, node.Name())
	g.prepared = false
}

// GetNode looks up a node by name, returning nil if not found.
func (g *Graph) GetNode(name string) RenderNode {
	return g.nodes[name]
}

// PrepareGraph performs a depth-first topological sort over every node
// reachable by output-to-input edges. It must be called after any
// structural change (AddNode/RemoveNode/port connect/disconnect) and
// before Execute. Returns an error, leaving the graph unexecutable, if a
// cycle exists.
func (g *Graph) PrepareGraph() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(g.nodes))
	order := make([]RenderNode, 0, len(g.nodes))

	var visit func(n RenderNode) error
	visit = func(n RenderNode) error {
		switch state[n.Name()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("rgraph: cycle detected at node %q", n.Name())
		}
		state[n.Name()] = visiting
		for _, in := range n.Inputs() {
			out := in.ConnectedOutput()
			if out == nil {
				continue
			}
			dep, ok := g.nodes[out.Owner().Name()]
			if !ok {
				continue // connected to a node outside this graph.
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[n.Name()] = done
		order = append(order, n)
		return nil
	}

	for _, n := range g.nodes {
		if err := visit(n); err != nil {
			g.prepared = false
			g.order = nil
			return err
		}
	}
	g.order = order
	g.prepared = true
	return nil
}

// Execute walks the nodes in topological order, calling each Execute
// exactly once. Must not be called concurrently with itself, and fails if
// the graph hasn't been prepared since its last structural change.
func (g *Graph) Execute() error {
	if !g.prepared {
		return fmt.Errorf("rgraph: graph not prepared, call PrepareGraph first")
	}
	for _, n := range g.order {
		n.Execute()
	}
	return nil
}
