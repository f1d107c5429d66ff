package sortable

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// whitePixel is a 1x1 white image scaled and tinted to draw solid boxes.
var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(toRGBA(ColorWhite))
	}
	return whitePixel
}

// drawEntry is one node to paint, in paint order.
type drawEntry struct {
	node *Node
	z    int
}

// collectDrawable appends visible nodes with a non-transparent color or a
// label in document order, tracking the inherited ZIndex.
func collectDrawable(n *Node, z int, buf []drawEntry) []drawEntry {
	if !n.Visible {
		return buf
	}
	if n.ZIndex > z {
		z = n.ZIndex
	}
	if n.Color.A > 0 || n.Label != "" {
		buf = append(buf, drawEntry{node: n, z: z})
	}
	for _, c := range n.children {
		buf = collectDrawable(c, z, buf)
	}
	return buf
}

// Draw paints the tree onto screen: boxes as tinted rects, labels with the
// debug font. Higher ZIndex subtrees paint last; otherwise document order.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(s.ClearColor))

	entries := collectDrawable(s.root, 0, nil)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].z < entries[j].z
	})

	img := whiteImage()
	for _, e := range entries {
		n := e.node
		r := s.BoundingRect(n)
		if n.Color.A > 0 && r.Width > 0 && r.Height > 0 {
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(r.Width, r.Height)
			op.GeoM.Translate(r.X, r.Y)
			c := n.Color
			op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
			screen.DrawImage(img, &op)
		}
		if n.Label != "" {
			ebitenutil.DebugPrintAt(screen, n.Label, int(r.X)+6, int(r.Y)+4)
		}
	}

	if s.debug {
		s.drawStats(screen)
	}
	s.flushScreenshots(screen)
}
