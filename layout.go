package sortable

import "math"

// Layout runs the layout pass immediately. Scene.Advance calls it at the
// start of every frame; call it directly after mutating the tree when fresh
// geometry is needed within the same frame.
func (s *Scene) Layout() {
	s.place(s.root, 0, 0, 0, nil)
	s.viewport.contentHeight = s.root.box.Height
}

// place lays out n with its top-left at document position (x, y) and returns
// the outer size. forceW overrides the width of a table cell; cols carries the
// column widths of the enclosing table for a row.
func (s *Scene) place(n *Node, x, y, forceW float64, cols []float64) (w, h float64) {
	if !n.Visible {
		n.box = Rect{X: x, Y: y}
		return 0, 0
	}

	switch n.Layout {
	case LayoutStack:
		w, h = s.placeStack(n, x, y, nil)
	case LayoutTable:
		n.colWidth = tableColumns(n, n.colWidth[:0])
		w, h = s.placeStack(n, x, y, n.colWidth)
	case LayoutRow:
		w, h = s.placeRow(n, x, y, cols)
	default:
		x += n.X
		y += n.Y
		w, h = n.Width, n.Height
		for _, c := range n.children {
			if c.Position == PositionFixed {
				s.placeFixed(c)
				continue
			}
			s.place(c, x, y, 0, nil)
		}
	}

	if forceW > 0 {
		w = forceW
	}
	if n.Width > w && n.Layout != LayoutNone {
		w = n.Width
	}
	h = math.Max(h, n.MinHeight)
	n.box = Rect{X: x, Y: y, Width: w, Height: h}
	return w, h
}

// placeStack stacks in-flow children top to bottom, Gap apart.
func (s *Scene) placeStack(n *Node, x, y float64, cols []float64) (w, h float64) {
	cy := y
	placed := 0
	for _, c := range n.children {
		if c.Position == PositionFixed {
			s.placeFixed(c)
			continue
		}
		if !c.Visible {
			continue
		}
		if placed > 0 {
			cy += n.Gap
		}
		cw, ch := s.place(c, x, cy, 0, cols)
		cy += ch
		w = math.Max(w, cw)
		placed++
	}
	return w, cy - y
}

// placeRow places children left to right. Cells take the column width when
// the row is in a table's flow, their frozen width when one is set, and their
// intrinsic width otherwise.
func (s *Scene) placeRow(n *Node, x, y float64, cols []float64) (w, h float64) {
	cx := x
	for i, c := range n.children {
		if !c.Visible {
			continue
		}
		if i > 0 {
			cx += n.Gap
		}
		cw := c.Width
		if i < len(cols) {
			cw = cols[i]
		}
		if c.FrozenWidth > 0 {
			cw = c.FrozenWidth
		}
		_, ch := s.place(c, cx, y, cw, nil)
		cx += cw
		h = math.Max(h, ch)
	}
	return cx - x, math.Max(h, n.Height)
}

// placeFixed lays out an out-of-flow node at its viewport position. Fixed
// rows do not take part in column sizing, so their cells fall back to frozen
// or intrinsic widths.
func (s *Scene) placeFixed(n *Node) {
	x, y := s.viewport.ViewportToDocument(n.Left, n.Top)
	s.place(n, x, y, 0, nil)
}

// tableColumns computes each column's width as the widest natural cell width
// among the table's in-flow rows.
func tableColumns(table *Node, buf []float64) []float64 {
	for _, row := range table.children {
		if row.Position == PositionFixed || !row.Visible {
			continue
		}
		for i, cell := range row.children {
			cw := cell.Width
			if cell.FrozenWidth > 0 {
				cw = cell.FrozenWidth
			}
			for len(buf) <= i {
				buf = append(buf, 0)
			}
			buf[i] = math.Max(buf[i], cw)
		}
	}
	return buf
}

// BoundingRect returns n's visual rectangle in viewport coordinates,
// including its current TranslateY, as of the last layout pass.
func (s *Scene) BoundingRect(n *Node) Rect {
	x, y := s.viewport.DocumentToViewport(n.box.X, n.box.Y)
	return Rect{X: x, Y: y + n.TranslateY, Width: n.box.Width, Height: n.box.Height}
}
