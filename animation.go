package sortable

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a fixed node's position fields together. Create one
// with TweenPosition and call Update(dt) each frame. If the target node is disposed, the group stops immediately
// without firing OnComplete.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool

	// OnComplete runs once, on the Update call that finishes the group.
	OnComplete func()
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.Done && g.OnComplete != nil {
		fn := g.OnComplete
		g.OnComplete = nil
		fn()
	}
}

// TweenPosition creates a TweenGroup that animates a fixed node's Left and
// Top to the given viewport coordinates over duration seconds.
func TweenPosition(node *Node, toLeft, toTop float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.Left), float32(toLeft), duration, fn)
	g.tweens[1] = gween.New(float32(node.Top), float32(toTop), duration, fn)
	g.fields[0] = &node.Left
	g.fields[1] = &node.Top
	return g
}

// transition is an in-flight TranslateY change.
type transition struct {
	tween *gween.Tween
	to    float64
}

// SetTranslateY changes the node's vertical visual offset. When Transition is
// positive the change animates over that many seconds with an ease-out-cubic
// curve, restarting from the current value; otherwise it applies at once.
func (n *Node) SetTranslateY(y float64) {
	if n.Transition <= 0 {
		n.TranslateY = y
		n.translate = nil
		return
	}
	if n.translate != nil && n.translate.to == y {
		return
	}
	if n.translate == nil && n.TranslateY == y {
		return
	}
	n.translate = &transition{
		tween: gween.New(float32(n.TranslateY), float32(y), n.Transition, ease.OutCubic),
		to:    y,
	}
}

// Transitioning reports whether a TranslateY transition is in progress.
func (n *Node) Transitioning() bool {
	return n.translate != nil
}

// updateTransitions advances every TranslateY transition in the subtree.
func updateTransitions(n *Node, dt float32) {
	if tr := n.translate; tr != nil {
		val, done := tr.tween.Update(dt)
		n.TranslateY = float64(val)
		if done {
			n.TranslateY = tr.to
			n.translate = nil
		}
	}
	for _, c := range n.children {
		updateTransitions(c, dt)
	}
}
