package ocr

// Point is a 2D pixel coordinate, region-local unless stated otherwise.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Detection is a single OCR engine output inside one region crop: a
// quadrilateral location, the recognized text and the engine confidence.
// Detections never cross regions; each one belongs to the crop it came from.
type Detection struct {
	Quad       [4]Point
	Text       string
	Confidence float64
}

// Center returns the mean of the four corner points. Not a true polygon
// centroid, but close enough for near-rectangular word boxes and cheap.
func (d Detection) Center() Point {
	var sx, sy float64
	for _, p := range d.Quad {
		sx += p.X
		sy += p.Y
	}
	return Point{X: sx / 4, Y: sy / 4}
}
