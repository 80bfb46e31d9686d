package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Detector produces text detections for a prepared region crop. The core
// treats the detector as an oracle: no retries, no confidence filtering.
type Detector interface {
	Detect(img image.Image) ([]Detection, error)
}

// TesseractDetector runs gosseract over a crop and returns word-level
// detections. A fresh client per call keeps it safe for concurrent use
// from the batch worker pool.
type TesseractDetector struct {
	// Whitelist restricts recognition to these characters. Empty means no restriction.
	Whitelist string
}

// NewTesseractDetector returns a detector tuned for numeric metric crops.
func NewTesseractDetector() *TesseractDetector {
	return &TesseractDetector{Whitelist: "0123456789+-. "}
}

func (t *TesseractDetector) Detect(img image.Image) ([]Detection, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}
	client := gosseract.NewClient()
	defer client.Close()
	_ = client.SetLanguage("eng")
	if t.Whitelist != "" {
		_ = client.SetWhitelist(t.Whitelist)
	}
	_ = client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT)
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("ocr error: %w", err)
	}
	dets := make([]Detection, 0, len(boxes))
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		r := b.Box
		dets = append(dets, Detection{
			Quad: [4]Point{
				{X: float64(r.Min.X), Y: float64(r.Min.Y)},
				{X: float64(r.Max.X), Y: float64(r.Min.Y)},
				{X: float64(r.Max.X), Y: float64(r.Max.Y)},
				{X: float64(r.Min.X), Y: float64(r.Max.Y)},
			},
			Text: word,
			// Tesseract reports 0-100; keep the conventional 0-1 range.
			Confidence: b.Confidence / 100,
		})
	}
	return dets, nil
}
