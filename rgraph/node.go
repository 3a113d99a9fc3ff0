// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package rgraph is a directed acyclic graph of named render nodes wired
// together through typed ports. The graph is topologically sorted once
// (PrepareGraph) and then walked in that order every frame (Execute).
package rgraph

// RenderNode is one vertex of a render graph. Names are unique within a
// Graph. Concrete nodes embed BaseNode or BindableRenderNode for the port
// bookkeeping and implement Execute themselves.
type RenderNode interface {
	Name() string
	Inputs() []Input
	Outputs() []Output
	Execute()
}

// Output is a named endpoint other nodes' inputs connect to. Both
// AttachOutput and BindableOutput[T] implement it.
type Output interface {
	Name() string
	Owner() RenderNode
}

// Input is a named endpoint that connects to exactly one Output of a
// compatible kind. Both AttachInput and BindableInput[T] implement it.
type Input interface {
	Name() string
	Owner() RenderNode
	// ConnectedOutput returns the Output this input is wired to, or nil.
	ConnectedOutput() Output
	// Disconnect severs the connection, if any, leaving the input free to
	// connect again.
	Disconnect()
}

// BaseNode provides the port bookkeeping every RenderNode needs. Embed it
// in a concrete node type and add ports with AddAttachInput/AddAttachOutput
// in the constructor; BindableRenderNode embeds BaseNode too and adds
// bindable ports on top.
type BaseNode struct {
	name    string
	inputs  []Input
	outputs []Output
}

// NewBaseNode creates a BaseNode with no ports yet.
func NewBaseNode(name string) BaseNode {
	return BaseNode{name: name}
}

func (n *BaseNode) Name() string      { return n.name }
func (n *BaseNode) Inputs() []Input   { return n.inputs }
func (n *BaseNode) Outputs() []Output { return n.outputs }

func (n *BaseNode) addInput(in Input)    { n.inputs = append(n.inputs, in) }
func (n *BaseNode) addOutput(out Output) { n.outputs = append(n.outputs, out) }

// AttachOutput is a value-less port: connecting it to an AttachInput only
// records an ordering edge ("after this node runs, that node may run"),
// carrying no GPU resource.
type AttachOutput struct {
	name  string
	owner RenderNode
}

// AddAttachOutput creates and registers a new ordering-only output on n.
func AddAttachOutput(n *BaseNode, name string, owner RenderNode) *AttachOutput {
	out := &AttachOutput{name: name, owner: owner}
	n.addOutput(out)
	return out
}

func (o *AttachOutput) Name() string      { return o.name }
func (o *AttachOutput) Owner() RenderNode { return o.owner }

// AttachInput is the input side of an ordering-only edge.
type AttachInput struct {
	name      string
	owner     RenderNode
	connected *AttachOutput
}

// AddAttachInput creates and registers a new ordering-only input on n.
func AddAttachInput(n *BaseNode, name string, owner RenderNode) *AttachInput {
	in := &AttachInput{name: name, owner: owner}
	n.addInput(in)
	return in
}

func (in *AttachInput) Name() string  { return in.name }
func (in *AttachInput) Owner() RenderNode { return in.owner }

func (in *AttachInput) ConnectedOutput() Output {
	if in.connected == nil {
		return nil
	}
	return in.connected
}

// Connect wires in to out, ordering out's node before in's node in the
// topological sort. Fails if in is already connected.
func (in *AttachInput) Connect(out *AttachOutput) bool {
	if in.connected != nil {
		return false
	}
	in.connected = out
	return true
}

// Disconnect severs the ordering edge, if any.
func (in *AttachInput) Disconnect() { in.connected = nil }
