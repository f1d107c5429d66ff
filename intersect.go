package sortable

// findIntersection maps the dragged item's center to a candidate slot.
//
// Over the before-items, the slot is above the first item whose bottom edge
// is at or below the center. Over the after-items, it is below the last item
// whose top edge is above the center. A center outside the dragged item's own
// horizontal span, or outside both vertical spans, yields no candidate.
func (s *session) findIntersection(centerX, centerY float64) candidate {
	if centerX < s.draggedRect.Left() || centerX > s.draggedRect.Right() {
		return noCandidate
	}

	if n := len(s.before); n > 0 && centerY >= s.before[0].top && centerY <= s.before[n-1].bottom {
		for i := range s.before {
			if s.before[i].bottom >= centerY {
				return candidate{list: listBefore, index: i}
			}
		}
	}

	if n := len(s.after); n > 0 && centerY >= s.after[0].top && centerY <= s.after[n-1].bottom {
		idx := -1
		for i := range s.after {
			if s.after[i].top >= centerY {
				break
			}
			idx = i
		}
		if idx >= 0 {
			return candidate{list: listAfter, index: idx}
		}
	}

	return noCandidate
}
