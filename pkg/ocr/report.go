package ocr

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
)

const (
	// JSONFileName is the batch result file written into the output directory.
	JSONFileName = "golf_ocr_results.json"
	// CSVFileName is the flattened batch result next to the JSON file.
	CSVFileName = "golf_ocr_results.csv"
)

// WriteResults saves the batch as nested JSON and as a flat CSV. The CSV
// header is filename plus the sorted metric names seen across the batch;
// error records leave their metric cells empty.
func WriteResults(results BatchResult, outputDir string) error {
	jsonPath := filepath.Join(outputDir, JSONFileName)
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return err
	}
	log.Printf("Results saved to %s", jsonPath)

	metricSet := map[string]struct{}{}
	for _, values := range results {
		for name := range values {
			if name == "error" {
				continue
			}
			metricSet[name] = struct{}{}
		}
	}
	metrics := make([]string, 0, len(metricSet))
	for name := range metricSet {
		metrics = append(metrics, name)
	}
	sort.Strings(metrics)

	filenames := make([]string, 0, len(results))
	for name := range results {
		filenames = append(filenames, name)
	}
	sort.Strings(filenames)

	csvPath := filepath.Join(outputDir, CSVFileName)
	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := append([]string{"filename"}, metrics...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, fname := range filenames {
		row := make([]string, 0, len(header))
		row = append(row, fname)
		for _, m := range metrics {
			row = append(row, results[fname][m])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	log.Printf("Results saved to %s", csvPath)
	return nil
}
