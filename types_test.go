package sortable

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if r.Left() != 10 || r.Top() != 20 || r.Right() != 110 || r.Bottom() != 70 {
		t.Errorf("edges = %v %v %v %v", r.Left(), r.Top(), r.Right(), r.Bottom())
	}
	o := r.Offset(5, -5)
	if o.X != 15 || o.Y != 15 || o.Width != 100 {
		t.Errorf("Offset = %+v", o)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		s    sessionState
		want string
	}{
		{stateDragging, "dragging"},
		{stateDropping, "dropping"},
		{stateAborting, "aborting"},
		{stateResolved, "resolved"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
