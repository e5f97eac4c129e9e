package rose

import (
	"errors"
	"testing"
)

func TestNewRadius(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		opts   []Option
		radius float64
	}{
		{"square", 600, 600, nil, 220},
		{"landscape uses short side", 800, 500, nil, 170},
		{"margin", 600, 600, []Option{WithMargin(20)}, 280},
		{"fixed radius", 600, 600, []Option{WithRadius(100), WithMargin(20)}, 100},
		{"tiny canvas", 100, 100, nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.w, tt.h, tt.opts...)
			if got := c.Radius(); got != tt.radius {
				t.Errorf("Radius() = %v, want %v", got, tt.radius)
			}
			if w, h := c.Size(); w != tt.w || h != tt.h {
				t.Errorf("Size() = %v, %v", w, h)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	c := New(600, 600)

	if _, err := c.Render(nil, NewState()); !errors.Is(err, ErrMalformedDataset) {
		t.Errorf("Render(nil) err = %v", err)
	}

	st := NewState()
	st.SetView(ViewDaily)
	st.SetDay(7)
	if _, err := c.Render(sampleDataset(), st); !errors.Is(err, ErrInvalidDayIndex) {
		t.Errorf("Render(Daily(7)) err = %v", err)
	}
}

func TestRenderSceneGeometry(t *testing.T) {
	frame, err := New(800, 500).Render(sampleDataset(), NewState())
	if err != nil {
		t.Fatal(err)
	}
	sc := frame.Scene
	if sc.Width != 800 || sc.Height != 500 || sc.Center != Pt(400, 250) || sc.Radius != 170 {
		t.Errorf("scene frame = %vx%v centre %v radius %v", sc.Width, sc.Height, sc.Center, sc.Radius)
	}
}
