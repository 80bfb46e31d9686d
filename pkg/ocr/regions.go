package ocr

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"sort"
)

// RequiredMetrics must all be present in a region configuration file.
var RequiredMetrics = []string{"DISTANCE_TO_PIN", "CARRY", "FROM_PIN", "STROKES_GAINED"}

// Region is one metric's fixed rectangle in source-image pixel coordinates
// plus the decimal-format expectation for its value.
type Region struct {
	Name          string
	X, Y, W, H    int
	ExpectDecimal bool
}

// Rect returns the region rectangle in source-image coordinates.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Center returns the region-local center (w/2, h/2), origin at the
// rectangle's top-left corner. Detections from the crop share this origin.
func (r Region) Center() Point {
	return Point{X: float64(r.W) / 2, Y: float64(r.H) / 2}
}

// Config holds the loaded region configuration, immutable for the run.
// Regions are kept in sorted name order so batch output is deterministic.
type Config struct {
	Regions []Region
}

// MetricNames returns the configured metric names in processing order.
func (c *Config) MetricNames() []string {
	names := make([]string, 0, len(c.Regions))
	for _, r := range c.Regions {
		names = append(names, r.Name)
	}
	return names
}

type rawConfig struct {
	Metrics map[string]struct {
		BBox          []int `json:"bbox"`
		ExpectDecimal bool  `json:"expect_decimal"`
	} `json:"metrics"`
}

// LoadConfig reads and validates a region configuration file. Any validation
// failure is fatal to the run; nothing should be processed on a bad config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configuration file not found: %w", err)
	}
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in configuration file: %w", err)
	}
	if raw.Metrics == nil {
		return nil, ErrNoMetricsSection
	}
	for _, name := range RequiredMetrics {
		if _, ok := raw.Metrics[name]; !ok {
			return nil, fmt.Errorf("missing required metric in configuration: %s", name)
		}
	}
	cfg := &Config{Regions: make([]Region, 0, len(raw.Metrics))}
	for name, m := range raw.Metrics {
		if len(m.BBox) != 4 {
			return nil, fmt.Errorf("invalid bbox format for %s: must be [x, y, width, height]", name)
		}
		for _, v := range m.BBox {
			if v < 0 {
				return nil, fmt.Errorf("invalid bbox for %s: negative value %d", name, v)
			}
		}
		cfg.Regions = append(cfg.Regions, Region{
			Name:          name,
			X:             m.BBox[0],
			Y:             m.BBox[1],
			W:             m.BBox[2],
			H:             m.BBox[3],
			ExpectDecimal: m.ExpectDecimal,
		})
	}
	sort.Slice(cfg.Regions, func(i, j int) bool { return cfg.Regions[i].Name < cfg.Regions[j].Name })
	logV("Loaded configuration for %d metrics", len(cfg.Regions))
	for _, r := range cfg.Regions {
		logV("  %s: bbox=(%d,%d,%d,%d), decimal=%v", r.Name, r.X, r.Y, r.W, r.H, r.ExpectDecimal)
	}
	return cfg, nil
}
