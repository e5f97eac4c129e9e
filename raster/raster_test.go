package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/rose"
	"github.com/gogpu/rose/internal/rosetest"
)

func frame(t *testing.T, st rose.State) rose.Frame {
	t.Helper()
	f, err := rose.New(600, 600).Render(rosetest.Dataset(), st)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return f
}

func rgb(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

func TestRender(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()

	f := frame(t, rose.NewState())
	img, err := r.Render(f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Fatalf("bounds = %v, want 600x600", b)
	}

	if cr, cg, cb := rgb(img.At(1, 1)); cr != 255 || cg != 255 || cb != 255 {
		t.Errorf("corner = (%d,%d,%d), want white background", cr, cg, cb)
	}

	c := f.Scene.Center
	peak := c.Add(rose.Polar(rose.Angle(rosetest.PeakHour), 150))
	pr, _, pb := rgb(img.At(int(peak.X), int(peak.Y)))
	if pb < 200 || int(pb)-int(pr) < 100 {
		t.Errorf("peak wedge pixel = (%d,_,%d), want saturated blue", pr, pb)
	}
}

func TestRender_SchemeChangesFill(t *testing.T) {
	st := rose.NewState()
	st.SetScheme(rose.SchemeOranges)
	f := frame(t, st)
	img, err := Render(f)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	peak := f.Scene.Center.Add(rose.Polar(rose.Angle(rosetest.PeakHour), 150))
	pr, _, pb := rgb(img.At(int(peak.X), int(peak.Y)))
	if pr < 200 || int(pr)-int(pb) < 100 {
		t.Errorf("orange peak pixel = (%d,_,%d)", pr, pb)
	}
}

func TestWritePNG(t *testing.T) {
	st := rose.NewState()
	st.Click(rosetest.PeakHour)
	st.Hover(3)

	var buf bytes.Buffer
	if err := WritePNG(&buf, frame(t, st)); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 600 || b.Dy() != 600 {
		t.Errorf("decoded bounds = %v", b)
	}
}

func TestRender_EmptyCanvas(t *testing.T) {
	if _, err := Render(rose.Frame{}); err == nil {
		t.Error("Render of a zero-size frame succeeded")
	}
}

func TestRendererCloseTwice(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
