package ocr

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Extractor ties the loaded region configuration to an OCR detector.
// It is read-only after construction and safe to share across workers.
type Extractor struct {
	Config   *Config
	Detector Detector
}

// NewExtractor builds an extractor over an immutable configuration.
func NewExtractor(cfg *Config, det Detector) *Extractor {
	return &Extractor{Config: cfg, Detector: det}
}

// ExtractFromImage extracts every configured metric from one screenshot.
// The returned map holds exactly the configured metric names; metrics with
// no plausible candidate map to "". An unreadable file or an engine failure
// fails the whole image.
func (e *Extractor) ExtractFromImage(path string) (map[string]string, error) {
	logV("Processing: %s", path)
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not load image %s: %w", path, err)
	}
	return e.ExtractFromDecoded(img)
}

// ExtractFromDecoded runs region extraction over an already decoded image.
func (e *Extractor) ExtractFromDecoded(img image.Image) (map[string]string, error) {
	results := make(map[string]string, len(e.Config.Regions))
	for _, reg := range e.Config.Regions {
		logV("  Extracting %s...", reg.Name)
		value, err := e.extractRegion(img, reg)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", reg.Name, err)
		}
		results[reg.Name] = value
		logV("    Result: %q", value)
	}
	return results, nil
}

// extractRegion crops one region, runs OCR on it and picks the best numeric
// candidate. A region where nothing plausible was read yields "" rather than
// an error; only engine failures escalate.
func (e *Extractor) extractRegion(img image.Image, reg Region) (string, error) {
	crop, scale := prepareCrop(img, reg)
	if crop.Bounds().Dx() == 0 || crop.Bounds().Dy() == 0 {
		// region lies outside the image; nothing to read
		return "", nil
	}
	dets, err := e.Detector.Detect(crop)
	if err != nil {
		return "", err
	}
	unscaleDetections(dets, scale)
	return BestNumberFromDetections(dets, reg.Center(), reg.ExpectDecimal), nil
}
