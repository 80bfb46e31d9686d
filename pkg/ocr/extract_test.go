package ocr

import "testing"

// quadAt builds a small word box whose corner-mean centroid is (cx, cy).
func quadAt(cx, cy float64) [4]Point {
	return [4]Point{
		{X: cx - 5, Y: cy - 3},
		{X: cx + 5, Y: cy - 3},
		{X: cx + 5, Y: cy + 3},
		{X: cx - 5, Y: cy + 3},
	}
}

func TestNumericTokenSignRecovery(t *testing.T) {
	// Tesseract split the sign glyph from the digit run.
	token, ok := NumericTokenFromText("+ 2.5 yds")
	if !ok || token != "+2.5" {
		t.Fatalf("expected +2.5 got %q ok=%v", token, ok)
	}
}

func TestNumericTokenNoDigits(t *testing.T) {
	if token, ok := NumericTokenFromText("ft"); ok {
		t.Fatalf("expected no token for unit-only text, got %q", token)
	}
	if token, ok := NumericTokenFromText(""); ok {
		t.Fatalf("expected no token for empty text, got %q", token)
	}
}

func TestNumericTokenPlain(t *testing.T) {
	cases := map[string]string{
		"12 yds": "12",
		"-3.4":   "-3.4",
		"45.6":   "45.6",
		" 103 ":  "103",
	}
	for in, want := range cases {
		token, ok := NumericTokenFromText(in)
		if !ok || token != want {
			t.Fatalf("NumericTokenFromText(%q) = %q/%v, want %q", in, token, ok, want)
		}
	}
}

func TestBestNumberEmptyDetections(t *testing.T) {
	if got := BestNumberFromDetections(nil, Point{X: 10, Y: 10}, false); got != "" {
		t.Fatalf("expected empty result got %q", got)
	}
}

func TestBestNumberAllMalformed(t *testing.T) {
	dets := []Detection{
		{Quad: quadAt(5, 5), Text: "ft"},
		{Quad: quadAt(6, 6), Text: "yds"},
	}
	if got := BestNumberFromDetections(dets, Point{X: 5, Y: 5}, false); got != "" {
		t.Fatalf("expected empty result got %q", got)
	}
}

func TestDecimalPreference(t *testing.T) {
	// "123" at distance 5, "45.6" at distance 8 from center.
	dets := []Detection{
		{Quad: quadAt(5, 0), Text: "123", Confidence: 0.9},
		{Quad: quadAt(8, 0), Text: "45.6", Confidence: 0.8},
	}
	center := Point{}
	// Decimal expected: 8-10=-2 beats 5.
	if got := BestNumberFromDetections(dets, center, true); got != "45.6" {
		t.Fatalf("expected 45.6 with decimal preference, got %q", got)
	}
	// No preference: plain distance wins.
	if got := BestNumberFromDetections(dets, center, false); got != "123" {
		t.Fatalf("expected 123 without decimal preference, got %q", got)
	}
}

func TestTieBreakKeepsInputOrder(t *testing.T) {
	dets := []Detection{
		{Quad: quadAt(3, 4), Text: "11"},
		{Quad: quadAt(3, 4), Text: "22"},
	}
	if got := BestNumberFromDetections(dets, Point{}, false); got != "11" {
		t.Fatalf("tie must resolve to first detection, got %q", got)
	}
}

func TestBonusIsAdditiveNotOverride(t *testing.T) {
	// Distances ~2.83 and ~53.7; the -10 bonus cannot close that gap.
	dets := []Detection{
		{Quad: quadAt(10, 10), Text: "12", Confidence: 0.9},
		{Quad: quadAt(50, 50), Text: "1.2", Confidence: 0.5},
	}
	center := Point{X: 12, Y: 12}
	if got := BestNumberFromDetections(dets, center, false); got != "12" {
		t.Fatalf("expected 12 got %q", got)
	}
	if got := BestNumberFromDetections(dets, center, true); got != "12" {
		t.Fatalf("expected 12 even with decimal preference, got %q", got)
	}
}

func TestBestNumberDeterministic(t *testing.T) {
	dets := []Detection{
		{Quad: quadAt(9, 1), Text: "7.1"},
		{Quad: quadAt(4, 2), Text: "88"},
		{Quad: quadAt(1, 9), Text: "+3"},
	}
	first := BestNumberFromDetections(dets, Point{X: 5, Y: 5}, true)
	for i := 0; i < 20; i++ {
		if got := BestNumberFromDetections(dets, Point{X: 5, Y: 5}, true); got != first {
			t.Fatalf("non-deterministic result: %q then %q", first, got)
		}
	}
}

func TestDetectionCenter(t *testing.T) {
	d := Detection{Quad: [4]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 6}, {X: 0, Y: 6}}}
	c := d.Center()
	if c.X != 5 || c.Y != 3 {
		t.Fatalf("expected (5,3) got (%v,%v)", c.X, c.Y)
	}
}
