package ocr

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	digitRE  = regexp.MustCompile(`\d`)
	numberRE = regexp.MustCompile(`[+-]?\d+\.?\d*`)
)

// decimalBonus outranks any distance differential under 10 pixels when a
// decimal value is expected. Additive on purpose: a far-away decimal token
// still loses to a much closer integer one.
const decimalBonus = -10.0

// NumericTokenFromText extracts a normalized numeric token from raw OCR text.
// Returns false when the text holds no digit or no contiguous digit run.
// A literal '+' anywhere in the text is folded back onto the token; Tesseract
// sometimes splits the sign glyph from the digit run and signed deltas must
// not be silently treated as unsigned.
func NumericTokenFromText(text string) (string, bool) {
	clean := strings.TrimSpace(text)
	if !digitRE.MatchString(clean) {
		return "", false
	}
	token := numberRE.FindString(clean)
	if token == "" {
		return "", false
	}
	if strings.Contains(clean, "+") && !strings.HasPrefix(token, "+") {
		token = "+" + strings.TrimLeft(token, "+-")
	}
	return token, true
}

// BestNumberFromDetections ranks all detections inside one region and returns
// the numeric token most likely to be the metric value, or "" when no
// detection yields a token. center is region-local (w/2, h/2) of the crop.
//
// Score = distance from the detection's corner-mean centroid to center, plus
// the decimal bonus. Lower is better; exact ties keep input order.
func BestNumberFromDetections(dets []Detection, center Point, expectDecimal bool) string {
	type candidate struct {
		score float64
		token string
		conf  float64
	}
	var cands []candidate
	for _, d := range dets {
		token, ok := NumericTokenFromText(d.Text)
		if !ok {
			continue
		}
		tc := d.Center()
		dist := math.Hypot(tc.X-center.X, tc.Y-center.Y)
		score := dist
		if expectDecimal && strings.Contains(token, ".") {
			score += decimalBonus
		}
		cands = append(cands, candidate{score: score, token: token, conf: d.Confidence})
		logV("    Candidate: %q (score: %.1f, conf: %.2f)", token, score, d.Confidence)
	}
	if len(cands) == 0 {
		return ""
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score < cands[j].score })
	return cands[0].token
}
