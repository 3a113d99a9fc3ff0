// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package rgraph

import (
	"testing"

	"github.com/ochre3d/engine/gpu"
)

// fakeTexture is a minimal gpu.Texture stand-in for port-propagation tests.
type fakeTexture struct {
	name        string
	bindCount   int
	unbindCount int
}

func (t *fakeTexture) Bind()                                      { t.bindCount++ }
func (t *fakeTexture) Unbind()                                    { t.unbindCount++ }
func (t *fakeTexture) Name() string                               { return t.name }
func (t *fakeTexture) Width() int                                  { return 0 }
func (t *fakeTexture) Height() int                                 { return 0 }
func (t *fakeTexture) Format() gpu.ColorFormat                     { return gpu.RGBA8 }
func (t *fakeTexture) SetWrap(s, tt gpu.WrapMode)                  {}
func (t *fakeTexture) SetFilter(min, mag gpu.FilterMode)           {}
func (t *fakeTexture) Upload(w, h int, pix []byte) error           { return nil }

// producerNode exposes one texture output; execOrder records the names of
// nodes in the order Execute ran, to verify topological order.
type producerNode struct {
	BindableRenderNode
	out       *BindableOutput[gpu.Texture]
	execOrder *[]string
}

func newProducerNode(name string, execOrder *[]string) *producerNode {
	n := &producerNode{BindableRenderNode: NewBindableRenderNode(name), execOrder: execOrder}
	slot := n.AddBindable(false)
	n.out = AddBindableOutput[gpu.Texture](&n.BindableRenderNode, "color", slot)
	return n
}

func (n *producerNode) Execute() {
	*n.execOrder = append(*n.execOrder, n.Name())
}

// consumerNode imports a texture input.
type consumerNode struct {
	BindableRenderNode
	in        *BindableInput[gpu.Texture]
	execOrder *[]string
}

func newConsumerNode(name string, execOrder *[]string) *consumerNode {
	n := &consumerNode{BindableRenderNode: NewBindableRenderNode(name), execOrder: execOrder}
	slot := n.AddBindable(true)
	n.in = AddBindableInput[gpu.Texture](&n.BindableRenderNode, "color", slot)
	return n
}

func (n *consumerNode) Execute() {
	n.BindAndRun(func() {
		*n.execOrder = append(*n.execOrder, n.Name())
	})
}

func TestAddNodeRejectsNameCollision(t *testing.T) {
	var order []string
	g := NewGraph()
	if !g.AddNode(newProducerNode("a", &order)) {
		t.Fatalf("expecting first add to succeed")
	}
	if g.AddNode(newProducerNode("a", &order)) {
		t.Errorf("expecting duplicate name to be rejected")
	}
}

func TestPrepareGraphOrdersProducerBeforeConsumer(t *testing.T) {
	var order []string
	g := NewGraph()
	p := newProducerNode("producer", &order)
	c := newConsumerNode("consumer", &order)
	g.AddNode(p)
	g.AddNode(c)

	if !c.in.Connect(p.out) {
		t.Fatalf("expecting connect to succeed")
	}
	if err := g.PrepareGraph(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "producer" || order[1] != "consumer" {
		t.Errorf("expecting [producer consumer], got %v", order)
	}
}

func TestBindablePropagatesOnConnectAndOnLaterSet(t *testing.T) {
	var order []string
	g := NewGraph()
	p := newProducerNode("producer", &order)
	c := newConsumerNode("consumer", &order)
	g.AddNode(p)
	g.AddNode(c)

	first := &fakeTexture{name: "first"}
	p.SetBindable(p.out.slot, first)
	c.in.Connect(p.out)

	if c.in.owner.GetBindable(c.in.slot) != gpu.Bindable(first) {
		t.Fatalf("expecting connect to copy the producer's current bindable")
	}

	second := &fakeTexture{name: "second"}
	p.SetBindable(p.out.slot, second)
	if c.in.owner.GetBindable(c.in.slot) != gpu.Bindable(second) {
		t.Errorf("expecting a later SetBindable on the producer to propagate to the consumer")
	}
}

func TestConnectDisconnectConnectIsIdempotent(t *testing.T) {
	var order []string
	g := NewGraph()
	p := newProducerNode("producer", &order)
	c := newConsumerNode("consumer", &order)
	g.AddNode(p)
	g.AddNode(c)

	if !c.in.Connect(p.out) {
		t.Fatalf("expecting first connect to succeed")
	}
	if c.in.Connect(p.out) {
		t.Errorf("expecting a second connect on an already-connected input to fail")
	}
	c.in.Disconnect()
	if !c.in.Connect(p.out) {
		t.Errorf("expecting connect after disconnect to succeed")
	}
}

func TestPrepareGraphDetectsCycle(t *testing.T) {
	var order []string
	g := NewGraph()
	a := newConsumerNode("a", &order)
	b := newConsumerNode("b", &order)
	aOut := AddBindableOutput[gpu.Texture](&a.BindableRenderNode, "out", a.AddBindable(false))
	bOut := AddBindableOutput[gpu.Texture](&b.BindableRenderNode, "out", b.AddBindable(false))
	g.AddNode(a)
	g.AddNode(b)

	a.in.Connect(bOut)
	b.in.Connect(aOut)

	if err := g.PrepareGraph(); err == nil {
		t.Fatalf("expecting cycle to be detected")
	}
	if err := g.Execute(); err == nil {
		t.Errorf("expecting Execute to refuse an unprepared/cyclic graph")
	}
}

func TestRemoveNodeDisconnectsReferencingInputs(t *testing.T) {
	var order []string
	g := NewGraph()
	p := newProducerNode("producer", &order)
	c := newConsumerNode("consumer", &order)
	g.AddNode(p)
	g.AddNode(c)
	c.in.Connect(p.out)

	g.RemoveNode(p)

	if c.in.ConnectedOutput() != nil {
		t.Errorf("expecting consumer's input disconnected after its producer is removed")
	}
	if g.GetNode("producer") != nil {
		t.Errorf("expecting producer gone from the graph")
	}
}

func TestBindAndRunBindsThenUnbinds(t *testing.T) {
	var order []string
	c := newConsumerNode("consumer", &order)
	tex := &fakeTexture{name: "tex"}
	c.SetBindable(c.in.slot, tex)

	c.Execute()

	if tex.bindCount != 1 || tex.unbindCount != 1 {
		t.Errorf("expecting one bind and one unbind, got bind=%d unbind=%d", tex.bindCount, tex.unbindCount)
	}
}
