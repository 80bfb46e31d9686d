package ocr

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteResults(t *testing.T) {
	results := BatchResult{
		"shot2.png": {"CARRY": "231", "STROKES_GAINED": "+0.4"},
		"shot1.png": {"CARRY": "148", "STROKES_GAINED": ""},
		"bad.png":   {"error": "could not load image"},
	}
	dir := t.TempDir()
	if err := WriteResults(results, dir); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, JSONFileName))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var back BatchResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if back["shot2.png"]["CARRY"] != "231" || back["bad.png"]["error"] == "" {
		t.Fatalf("json roundtrip mismatch: %v", back)
	}

	f, err := os.Open(filepath.Join(dir, CSVFileName))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows got %d", len(rows))
	}
	header := rows[0]
	if header[0] != "filename" || header[1] != "CARRY" || header[2] != "STROKES_GAINED" {
		t.Fatalf("unexpected header %v", header)
	}
	// rows sorted by filename; error record renders empty metric cells
	if rows[1][0] != "bad.png" || rows[1][1] != "" || rows[1][2] != "" {
		t.Fatalf("error row should have empty metric cells, got %v", rows[1])
	}
	if rows[3][0] != "shot2.png" || rows[3][2] != "+0.4" {
		t.Fatalf("unexpected row %v", rows[3])
	}
}

func TestSummary(t *testing.T) {
	results := BatchResult{
		"a.png": {"CARRY": "1"},
		"b.png": {"error": "boom"},
		"c.png": {"CARRY": ""},
	}
	total, ok := results.Summary()
	if total != 3 || ok != 2 {
		t.Fatalf("expected 3/2 got %d/%d", total, ok)
	}
}
