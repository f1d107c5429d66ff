package sortable

// GhostHandler neutralizes layout side effects that taking an item out of
// flow would otherwise cause for a particular kind of node. OnStart and OnEnd
// run exactly once per gesture, bracketing it. Either may be nil.
type GhostHandler struct {
	OnStart func(item *Node)
	OnEnd   func(item *Node)
}

// ghostHandlers is keyed by node tag.
var ghostHandlers = map[string]GhostHandler{
	"tr": tableRowGhost,
}

// RegisterGhostHandler installs h for items whose Tag is tag, replacing any
// existing handler. Passing a zero GhostHandler removes the entry.
func RegisterGhostHandler(tag string, h GhostHandler) {
	if h.OnStart == nil && h.OnEnd == nil {
		delete(ghostHandlers, tag)
		return
	}
	ghostHandlers[tag] = h
}

func ghostFor(n *Node) GhostHandler {
	return ghostHandlers[n.Tag]
}

func (h GhostHandler) start(n *Node) {
	if h.OnStart != nil {
		h.OnStart(n)
	}
}

func (h GhostHandler) end(n *Node) {
	if h.OnEnd != nil {
		h.OnEnd(n)
	}
}

// tableRowGhost pins every cell of a dragged row to its laid-out width. A
// fixed row no longer takes part in column sizing, so without this its cells
// shrink to their intrinsic widths.
var tableRowGhost = GhostHandler{
	OnStart: func(row *Node) {
		for _, cell := range row.children {
			cell.FrozenWidth = cell.box.Width
		}
	},
	OnEnd: func(row *Node) {
		for _, cell := range row.children {
			cell.FrozenWidth = 0
		}
	},
}
