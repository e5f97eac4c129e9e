package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/rose"
	"github.com/gogpu/rose/internal/rosetest"
)

func render(t *testing.T, ds *rose.Dataset, st rose.State) string {
	t.Helper()
	f, err := rose.New(600, 600).Render(ds, st)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return String(f)
}

// wellFormed decodes every token to check the document parses as XML.
func wellFormed(t *testing.T, doc string) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := d.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v", err)
		}
	}
}

func TestEncode_Views(t *testing.T) {
	tests := []struct {
		name     string
		view     rose.ViewKind
		segments int
		mean     bool
	}{
		{"hourly", rose.ViewHourly, 24, true},
		{"blocks", rose.ViewBlocks, 6, false},
		{"daily", rose.ViewDaily, 24, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := rose.NewState()
			st.SetView(tt.view)
			doc := render(t, rosetest.Dataset(), st)
			wellFormed(t, doc)

			if got := strings.Count(doc, `<path class="segment"`); got != tt.segments {
				t.Errorf("got %d segment paths, want %d", got, tt.segments)
			}
			if got := strings.Contains(doc, `<g class="mean-direction">`); got != tt.mean {
				t.Errorf("mean-direction group present = %v, want %v", got, tt.mean)
			}
			if !strings.Contains(doc, `<g class="axis">`) || !strings.Contains(doc, `<g class="legend"`) {
				t.Error("missing axis or legend group")
			}
		})
	}
}

func TestEncode_Structure(t *testing.T) {
	doc := render(t, rosetest.Dataset(), rose.NewState())
	for _, want := range []string{
		`width="600" height="600"`,
		`<g class="chart" transform="translate(300,300)">`,
		`stroke-dasharray="4,4"`,
		`>Overall Activity by Hour</text>`,
		`>5:30pm</text>`,
		`>R=0.20</text>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %q", want)
		}
	}
	if strings.Contains(doc, `class="tooltip"`) || strings.Contains(doc, `class="detail"`) {
		t.Error("tooltip or detail drawn without interaction")
	}
}

func TestEncode_Interaction(t *testing.T) {
	st := rose.NewState()
	st.Click(rosetest.PeakHour)
	st.Hover(3)
	doc := render(t, rosetest.Dataset(), st)
	wellFormed(t, doc)
	for _, want := range []string{
		`class="tooltip"`,
		`class="detail"`,
		`>8pm-9pm Details</text>`,
		`data-slot="20"`,
		`stroke="#ff6b6b" stroke-width="2"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document lacks %q", want)
		}
	}
}

func TestEncode_EscapesText(t *testing.T) {
	ds := rosetest.Dataset()
	ds.Days[0].Label = "mon & <tue>"
	st := rose.NewState()
	st.SetView(rose.ViewDaily)
	st.SetDay(0)
	doc := render(t, ds, st)
	wellFormed(t, doc)
	if !strings.Contains(doc, "Activity by Hour (mon &amp; &lt;tue&gt;)") {
		t.Error("title was not escaped")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriteError(t *testing.T) {
	f, err := rose.New(600, 600).Render(rosetest.Dataset(), rose.NewState())
	if err != nil {
		t.Fatal(err)
	}
	if err := Encode(failWriter{}, f); err == nil || !strings.HasPrefix(err.Error(), "svg: ") {
		t.Errorf("Encode to failing writer = %v", err)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{300, "300"},
		{0.5, "0.5"},
		{-0.0001, "0"},
		{1.23456, "1.235"},
		{-12.5, "-12.5"},
	}
	for _, tt := range tests {
		if got := num(tt.v); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
