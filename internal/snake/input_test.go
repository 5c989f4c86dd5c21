package snake

import "testing"

func TestMapKey(t *testing.T) {
	m := NewInputMapper(0)

	tests := []struct {
		key  string
		want Direction
		ok   bool
	}{
		{"ArrowUp", DirUp, true},
		{"ArrowDown", DirDown, true},
		{"ArrowLeft", DirLeft, true},
		{"ArrowRight", DirRight, true},
		{"up", DirUp, true},
		{"left", DirLeft, true},
		{"w", DirUp, true},
		{"a", DirLeft, true},
		{"s", DirDown, true},
		{"d", DirRight, true},
		{"Enter", 0, false},
		{"x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := m.MapKey(tt.key)
			if ok != tt.ok {
				t.Fatalf("MapKey(%q) ok = %v, want %v", tt.key, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestMapSwipe(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		sw        Swipe
		want      Direction
		ok        bool
	}{
		{"right", 0, Swipe{0, 0, 30, 5}, DirRight, true},
		{"left", 0, Swipe{30, 0, 0, 5}, DirLeft, true},
		{"down", 0, Swipe{0, 0, 5, 30}, DirDown, true},
		{"up", 0, Swipe{0, 30, 5, 0}, DirUp, true},
		{"tie goes vertical", 0, Swipe{0, 0, 10, 10}, DirDown, true},
		{"tie upward", 0, Swipe{0, 10, 10, 0}, DirUp, true},
		{"zero length", 0, Swipe{4, 4, 4, 4}, 0, false},
		{"below threshold", 10, Swipe{0, 0, 8, 2}, 0, false},
		{"at threshold", 10, Swipe{0, 0, 0, 10}, 0, false},
		{"past threshold", 10, Swipe{0, 0, 0, -11}, DirUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewInputMapper(tt.threshold)
			got, ok := m.MapSwipe(tt.sw)
			if ok != tt.ok {
				t.Fatalf("MapSwipe(%+v) ok = %v, want %v", tt.sw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("MapSwipe(%+v) = %v, want %v", tt.sw, got, tt.want)
			}
		})
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name             string
		current, pending Direction
		requested        Direction
		want             Direction
		changed          bool
	}{
		{"turn", DirRight, DirRight, DirUp, DirUp, true},
		{"reversal", DirRight, DirRight, DirLeft, DirRight, false},
		{"reversal keeps pending", DirRight, DirUp, DirLeft, DirUp, false},
		{"same as pending", DirRight, DirUp, DirUp, DirUp, false},
		{"override pending", DirRight, DirUp, DirDown, DirDown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Steer(tt.current, tt.pending, tt.requested)
			if got != tt.want || changed != tt.changed {
				t.Errorf("Steer = %v, %v; want %v, %v", got, changed, tt.want, tt.changed)
			}
		})
	}
}
