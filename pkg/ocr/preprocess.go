package ocr

import (
	"image"

	"github.com/disintegration/imaging"
)

// minOCRHeight is the crop height below which Tesseract starts dropping
// glyphs; smaller crops are Lanczos-upscaled before recognition.
const minOCRHeight = 64

// prepareCrop cuts a region out of the source image and normalizes it for
// OCR: grayscale, then upscale when the crop is small. Returns the prepared
// image and the scale factor applied to it (1 when untouched).
func prepareCrop(src image.Image, r Region) (*image.NRGBA, float64) {
	crop := imaging.Crop(src, r.Rect())
	gray := imaging.Grayscale(crop)
	h := gray.Bounds().Dy()
	if h == 0 || h >= minOCRHeight {
		return gray, 1
	}
	scale := float64(minOCRHeight) / float64(h)
	return imaging.Resize(gray, 0, minOCRHeight, imaging.Lanczos), scale
}

// unscaleDetections maps detections from an upscaled crop back into
// region-local coordinates so distance scoring sees the original geometry.
func unscaleDetections(dets []Detection, scale float64) {
	if scale == 1 {
		return
	}
	for i := range dets {
		for j := range dets[i].Quad {
			dets[i].Quad[j].X /= scale
			dets[i].Quad[j].Y /= scale
		}
	}
}
