package sortable

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsText is the overlay drawn in debug mode: frame rates, scroll offset
// and the number of nodes with a running transition.
func (s *Scene) statsText() string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscroll: %.0f\nmoving: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.viewport.ScrollY, countTransitioning(s.root))
}

// drawStats prints statsText in the top-right corner.
func (s *Scene) drawStats(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, s.statsText(), w-110, 4)
}

func countTransitioning(n *Node) int {
	c := 0
	if n.translate != nil {
		c++
	}
	for _, child := range n.children {
		c += countTransitioning(child)
	}
	return c
}
