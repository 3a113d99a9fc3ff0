// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rgraph

import "github.com/ochre3d/engine/gpu"

// bindableSlot is one numbered resource slot owned by a BindableRenderNode.
// autoBind marks it for the node's default bind/unbind-on-execute pass;
// listeners are the connected inputs elsewhere in the graph that mirror
// this slot's value whenever it changes.
type bindableSlot struct {
	value     gpu.Bindable
	autoBind  bool
	listeners []bindableListener
}

type bindableListener interface {
	refresh(value gpu.Bindable)
}

// BindableRenderNode is a RenderNode that owns a numbered set of GPU
// resource slots; BindableInput/BindableOutput ports index into this set.
// On Execute, a node built on BindableRenderNode is expected to call
// BindAndRun to bind its auto-bind slots, do its work, then unbind in
// reverse order.
type BindableRenderNode struct {
	BaseNode
	slots []*bindableSlot
}

// NewBindableRenderNode creates a BindableRenderNode with no slots yet.
func NewBindableRenderNode(name string) BindableRenderNode {
	return BindableRenderNode{BaseNode: NewBaseNode(name)}
}

// Execute does nothing; nodes built on BindableRenderNode define their own.
func (n *BindableRenderNode) Execute() {}

// AddBindable reserves a new resource slot and returns its index.
// autoBind marks whether BindAndRun should bind/unbind it automatically.
func (n *BindableRenderNode) AddBindable(autoBind bool) int {
	n.slots = append(n.slots, &bindableSlot{autoBind: autoBind})
	return len(n.slots) - 1
}

// GetBindable returns the resource currently in slot, or nil if unset.
func (n *BindableRenderNode) GetBindable(slot int) gpu.Bindable {
	return n.slots[slot].value
}

// SetBindable replaces slot's resource and mirrors the change to every
// input connected to an output backed by this slot.
func (n *BindableRenderNode) SetBindable(slot int, value gpu.Bindable) {
	s := n.slots[slot]
	s.value = value
	for _, l := range s.listeners {
		l.refresh(value)
	}
}

func (n *BindableRenderNode) addListener(slot int, l bindableListener) {
	s := n.slots[slot]
	s.listeners = append(s.listeners, l)
}

func (n *BindableRenderNode) removeListener(slot int, l bindableListener) {
	s := n.slots[slot]
	for i, have := range s.listeners {
		if have == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// BindAndRun binds every auto-bind slot with a set resource (in slot
// order), calls work, then unbinds those same slots in reverse order —
// the deterministic GPU-state push/pop every BindableRenderNode's
// Execute should perform around its drawing work.
func (n *BindableRenderNode) BindAndRun(work func()) {
	var bound []int
	for i, s := range n.slots {
		if s.autoBind && s.value != nil {
			s.value.Bind()
			bound = append(bound, i)
		}
	}
	work()
	for i := len(bound) - 1; i >= 0; i-- {
		n.slots[bound[i]].value.Unbind()
	}
}

// BindableOutput exposes one of a BindableRenderNode's resource slots to
// other nodes. T is the resource's gpu interface (gpu.Texture,
// gpu.FrameBuffer, gpu.Mesh, ...).
type BindableOutput[T gpu.Bindable] struct {
	name  string
	owner *BindableRenderNode
	slot  int
}

// AddBindableOutput creates and registers a new bindable output backed by
// slot on n.
func AddBindableOutput[T gpu.Bindable](n *BindableRenderNode, name string, slot int) *BindableOutput[T] {
	out := &BindableOutput[T]{name: name, owner: n, slot: slot}
	n.addOutput(out)
	return out
}

func (o *BindableOutput[T]) Name() string      { return o.name }
func (o *BindableOutput[T]) Owner() RenderNode { return o.owner }

// Value returns the output's current resource, the zero value of T if the
// backing slot has never been set or holds a different concrete type.
func (o *BindableOutput[T]) Value() T {
	v, _ := o.owner.GetBindable(o.slot).(T)
	return v
}

// BindableInput imports another node's BindableOutput of the same type
// into one of this node's resource slots.
type BindableInput[T gpu.Bindable] struct {
	name      string
	owner     *BindableRenderNode
	slot      int
	connected *BindableOutput[T]
}

// AddBindableInput creates and registers a new bindable input backed by
// slot on n.
func AddBindableInput[T gpu.Bindable](n *BindableRenderNode, name string, slot int) *BindableInput[T] {
	in := &BindableInput[T]{name: name, owner: n, slot: slot}
	n.addInput(in)
	return in
}

func (in *BindableInput[T]) Name() string      { return in.name }
func (in *BindableInput[T]) Owner() RenderNode { return in.owner }

func (in *BindableInput[T]) ConnectedOutput() Output {
	if in.connected == nil {
		return nil
	}
	return in.connected
}

// Connect wires in to out: the input immediately copies out's current
// resource into its own slot, then registers so any later SetBindable on
// out's slot is mirrored here without a per-frame graph walk. Fails if in
// is already connected.
func (in *BindableInput[T]) Connect(out *BindableOutput[T]) bool {
	if in.connected != nil {
		return false
	}
	in.connected = out
	in.owner.SetBindable(in.slot, out.Value())
	out.owner.addListener(out.slot, in)
	return true
}

// Disconnect severs the connection, if any.
func (in *BindableInput[T]) Disconnect() {
	if in.connected == nil {
		return
	}
	in.connected.owner.removeListener(in.connected.slot, in)
	in.connected = nil
}

func (in *BindableInput[T]) refresh(value gpu.Bindable) {
	in.owner.SetBindable(in.slot, value)
}
