package ocr

import "errors"

// ErrNoMetricsSection is returned when the configuration file lacks a metrics section.
var ErrNoMetricsSection = errors.New("configuration file must contain a metrics section")
