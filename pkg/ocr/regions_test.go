package ocr

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `{
  "metrics": {
    "DISTANCE_TO_PIN": {"bbox": [100, 200, 300, 80]},
    "CARRY": {"bbox": [100, 300, 300, 80]},
    "FROM_PIN": {"bbox": [100, 400, 300, 80]},
    "STROKES_GAINED": {"bbox": [100, 500, 300, 80], "expect_decimal": true}
  }
}`

func TestLoadConfigValid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Regions) != 4 {
		t.Fatalf("expected 4 regions got %d", len(cfg.Regions))
	}
	// regions come back sorted by name
	names := cfg.MetricNames()
	want := []string{"CARRY", "DISTANCE_TO_PIN", "FROM_PIN", "STROKES_GAINED"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("expected %s at %d got %s", n, i, names[i])
		}
	}
	for _, r := range cfg.Regions {
		if r.Name == "STROKES_GAINED" && !r.ExpectDecimal {
			t.Fatalf("STROKES_GAINED should expect a decimal")
		}
		if r.Name == "CARRY" && r.ExpectDecimal {
			t.Fatalf("expect_decimal must default to false")
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "{not json")); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
}

func TestLoadConfigNoMetricsSection(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"regions": {}}`))
	if !errors.Is(err, ErrNoMetricsSection) {
		t.Fatalf("expected ErrNoMetricsSection got %v", err)
	}
}

func TestLoadConfigMissingRequiredMetric(t *testing.T) {
	body := `{"metrics": {"CARRY": {"bbox": [0, 0, 10, 10]}}}`
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatalf("expected error for missing required metrics")
	}
}

func TestLoadConfigBadBBox(t *testing.T) {
	body := `{
  "metrics": {
    "DISTANCE_TO_PIN": {"bbox": [100, 200, 300]},
    "CARRY": {"bbox": [100, 300, 300, 80]},
    "FROM_PIN": {"bbox": [100, 400, 300, 80]},
    "STROKES_GAINED": {"bbox": [100, 500, 300, 80]}
  }
}`
	if _, err := LoadConfig(writeConfig(t, body)); err == nil {
		t.Fatalf("expected error for 3-element bbox")
	}
}

func TestRegionCenterIsRegionLocal(t *testing.T) {
	r := Region{Name: "CARRY", X: 500, Y: 900, W: 300, H: 80}
	c := r.Center()
	if c.X != 150 || c.Y != 40 {
		t.Fatalf("center must ignore the region offset, got (%v,%v)", c.X, c.Y)
	}
}
