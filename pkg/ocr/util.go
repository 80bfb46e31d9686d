package ocr

import "log"

// Verbose gates per-candidate and per-region diagnostic logging.
// It never affects extraction results.
var Verbose bool

func logV(format string, args ...any) {
	if Verbose {
		log.Printf(format, args...)
	}
}
