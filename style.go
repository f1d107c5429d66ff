package sortable

// DraggingClass marks the item being dragged for the duration of a gesture.
const DraggingClass = "sortable-dragging"

// embeddedTag is the tag of nested interactive content (embedded frames)
// whose pointer events are suspended while a gesture is active.
const embeddedTag = "frame"

// draggedZIndex lifts the dragged item above its siblings.
const draggedZIndex = 1000

// ResetStyle clears the inline positioning and translation state of n back to
// the static defaults. Classes and pointer events are left alone.
func ResetStyle(n *Node) {
	n.Position = PositionStatic
	n.Left = 0
	n.Top = 0
	n.TranslateY = 0
	n.translate = nil
	n.Transition = 0
	n.ZIndex = 0
}

// setPointerEvents toggles pointer events on every embedded descendant of
// root. Returns the nodes whose flag actually changed so the caller can
// restore exactly those.
func setPointerEvents(root *Node, enabled bool, changed []*Node) []*Node {
	for _, c := range root.children {
		if c.Tag == embeddedTag && c.PointerEvents != enabled {
			c.PointerEvents = enabled
			changed = append(changed, c)
		}
		changed = setPointerEvents(c, enabled, changed)
	}
	return changed
}
