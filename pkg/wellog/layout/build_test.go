package layout

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"welltrack/pkg/wellog/measure"
)

func sample(t *testing.T) measure.Dataset {
	t.Helper()
	ds, err := measure.Normalize([]measure.Measurement{
		{Depth: 100, Lithology: "Shale", GammaRay: 80, Porosity: 0.40},
		{Depth: 200, Lithology: "Sandstone", GammaRay: 90, Porosity: 0.60},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	return ds
}

func TestBuildEndToEnd(t *testing.T) {
	l := Build(sample(t))

	// Two-band lithology track.
	if len(l.Bands) != 2 {
		t.Fatalf("band count = %d, want 2", len(l.Bands))
	}
	if l.Bands[0].DepthStart != 100 || l.Bands[0].DepthEnd != 200 {
		t.Errorf("first band spans %v..%v, want 100..200", l.Bands[0].DepthStart, l.Bands[0].DepthEnd)
	}
	if l.Bands[1].Bottom != l.PlotBottom {
		t.Errorf("second band bottom = %v, want plot bottom %v", l.Bands[1].Bottom, l.PlotBottom)
	}

	// Two-point polylines for both curves, traversed in depth order.
	for i, c := range l.Curves {
		if len(c.Points) != 2 {
			t.Fatalf("curve %d has %d points, want 2", i, len(c.Points))
		}
		if c.Points[0].Y >= c.Points[1].Y {
			t.Errorf("curve %d points not in depth order: %v", i, c.Points)
		}
	}

	// Legend with exactly the two lithologies, first-seen order.
	if len(l.Legend) != 2 {
		t.Fatalf("legend has %d entries, want 2", len(l.Legend))
	}
	if l.Legend[0].Lithology != "Shale" || l.Legend[1].Lithology != "Sandstone" {
		t.Errorf("legend order = %q, %q", l.Legend[0].Lithology, l.Legend[1].Lithology)
	}
}

func TestBuildDepthScaleEndpoints(t *testing.T) {
	l := Build(sample(t))

	first := l.Gridlines[0]
	last := l.Gridlines[len(l.Gridlines)-1]

	if first.Y != l.PlotTop {
		t.Errorf("gridline at minDepth y = %v, want plot top %v", first.Y, l.PlotTop)
	}
	if last.Y != l.PlotBottom {
		t.Errorf("gridline at maxDepth y = %v, want plot bottom %v", last.Y, l.PlotBottom)
	}
	if l.Bands[0].Top != l.PlotTop {
		t.Errorf("first band top = %v, want plot top %v", l.Bands[0].Top, l.PlotTop)
	}
}

func TestBuildGridlineCountAndSpacing(t *testing.T) {
	l := Build(sample(t))

	if len(l.Gridlines) != DefaultTicks+1 {
		t.Fatalf("gridline count = %d, want %d", len(l.Gridlines), DefaultTicks+1)
	}

	// Tick depth = minDepth + i * (span / N).
	for i, g := range l.Gridlines {
		want := 100 + float64(i)*10
		if math.Abs(g.Depth-want) > 1e-9 {
			t.Errorf("gridline %d depth = %v, want %v", i, g.Depth, want)
		}
	}

	custom := Build(sample(t), WithTicks(4))
	if len(custom.Gridlines) != 5 {
		t.Errorf("WithTicks(4) gridline count = %d, want 5", len(custom.Gridlines))
	}
}

func TestBuildTracksEqualThirds(t *testing.T) {
	l := Build(sample(t))

	w := l.Tracks[0].Width()
	for i, tr := range l.Tracks {
		if math.Abs(tr.Width()-w) > 1e-9 {
			t.Errorf("track %d width = %v, want %v", i, tr.Width(), w)
		}
	}
	if l.Tracks[0].Left != l.PlotLeft {
		t.Errorf("first track left = %v, want plot left %v", l.Tracks[0].Left, l.PlotLeft)
	}
	if math.Abs(l.Tracks[2].Right-l.PlotRight) > 1e-9 {
		t.Errorf("last track right = %v, want plot right %v", l.Tracks[2].Right, l.PlotRight)
	}

	if len(l.Dividers) != 2 {
		t.Fatalf("divider count = %d, want 2", len(l.Dividers))
	}
	if l.Dividers[0] != l.Tracks[1].Left || l.Dividers[1] != l.Tracks[2].Left {
		t.Errorf("dividers = %v, want track boundaries %v, %v",
			l.Dividers, l.Tracks[1].Left, l.Tracks[2].Left)
	}
}

func TestBuildCurveInsetPadding(t *testing.T) {
	l := Build(sample(t))

	for i, c := range l.Curves {
		tr := l.Tracks[i+1]
		inset := tr.Width() * trackInsetFrac
		for _, p := range c.Points {
			if p.X < tr.Left+inset-1e-9 || p.X > tr.Right-inset+1e-9 {
				t.Errorf("curve %d point x=%v outside inset band [%v, %v]",
					i, p.X, tr.Left+inset, tr.Right-inset)
			}
		}
	}
}

func TestBuildDegenerateValueRange(t *testing.T) {
	ds, err := measure.Normalize([]measure.Measurement{
		{Depth: 100, Lithology: "Shale", GammaRay: 75, Porosity: 0.1},
		{Depth: 200, Lithology: "Shale", GammaRay: 75, Porosity: 0.2},
		{Depth: 300, Lithology: "Shale", GammaRay: 75, Porosity: 0.3},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}

	l := Build(ds)

	// Constant gamma ray: every point maps to the track midpoint.
	tr := l.Tracks[TrackGammaRay]
	mid := (tr.Left + tr.Right) / 2
	for _, p := range l.Curves[0].Points {
		if math.Abs(p.X-mid) > 1e-9 {
			t.Errorf("degenerate curve point x = %v, want track midpoint %v", p.X, mid)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	records := []measure.Measurement{
		{Depth: 340, Lithology: "Limestone", GammaRay: 30, Porosity: 0.11},
		{Depth: 120, Lithology: "Shale", GammaRay: 120, Porosity: 0.07},
		{Depth: 260, Lithology: "Sandstone", GammaRay: 60, Porosity: 0.24},
		{Depth: 180, Lithology: "Shale", GammaRay: 110, Porosity: 0.09},
	}

	ds1, _ := measure.Normalize(records)
	l1 := Build(ds1)

	// Shuffle the input; normalization restores the same order.
	shuffled := make([]measure.Measurement, len(records))
	copy(shuffled, records)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	ds2, _ := measure.Normalize(shuffled)
	l2 := Build(ds2)

	if !reflect.DeepEqual(l1, l2) {
		t.Error("layouts differ for identical datasets in different input order")
	}
}

func TestBuildOptions(t *testing.T) {
	l := Build(sample(t), WithSize(400, 500), WithCurveNames("GR", "PHI"))

	if l.Width != 400 || l.Height != 500 {
		t.Errorf("size = %vx%v, want 400x500", l.Width, l.Height)
	}
	if l.Tracks[TrackGammaRay].Name != "GR" || l.Tracks[TrackPorosity].Name != "PHI" {
		t.Errorf("curve names = %q, %q", l.Tracks[TrackGammaRay].Name, l.Tracks[TrackPorosity].Name)
	}
	if l.Curves[0].Name != "GR" {
		t.Errorf("curve 0 name = %q, want GR", l.Curves[0].Name)
	}
}

func TestBuildAxisLabels(t *testing.T) {
	l := Build(sample(t))

	gr := l.Tracks[TrackGammaRay]
	if gr.MinLabel != "80" || gr.MaxLabel != "90" {
		t.Errorf("gamma axis labels = %q..%q, want 80..90", gr.MinLabel, gr.MaxLabel)
	}
	phi := l.Tracks[TrackPorosity]
	if phi.MinLabel != "0.4" || phi.MaxLabel != "0.6" {
		t.Errorf("porosity axis labels = %q..%q, want 0.4..0.6", phi.MinLabel, phi.MaxLabel)
	}
	if l.Tracks[TrackLithology].MinLabel != "" {
		t.Error("lithology track should have no axis labels")
	}
}
