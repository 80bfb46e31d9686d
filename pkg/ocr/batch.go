package ocr

import (
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// BatchResult maps image filename to its per-image metric map. A whole-image
// failure is recorded as {"error": message} so one bad file never aborts a run.
type BatchResult map[string]map[string]string

// Summary counts total and successful entries in the batch.
func (r BatchResult) Summary() (total, successful int) {
	for _, values := range r {
		total++
		if _, failed := values["error"]; !failed {
			successful++
		}
	}
	return total, successful
}

// ListImageFiles returns the supported image filenames in dir, sorted.
func ListImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !IsSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// IsSupportedExt reports whether name looks like a processable screenshot.
func IsSupportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// EffectiveWorkers resolves a worker count flag, defaulting to NumCPU.
func EffectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}

// ProcessDirectory extracts metrics from every supported image in inputDir
// using a pool of workers, writes JSON and CSV results into outputDir and
// returns the accumulated batch.
func (e *Extractor) ProcessDirectory(inputDir, outputDir string, workers int) (BatchResult, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	files := ListImageFiles(inputDir)
	results := make(BatchResult, len(files))
	if len(files) == 0 {
		log.Printf("No images found in %s", inputDir)
		return results, nil
	}
	log.Printf("Found %d images to process (workers=%d)", len(files), EffectiveWorkers(workers))

	var mu sync.Mutex
	e.runPool(inputDir, files, workers, nil, func(name string, values map[string]string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			log.Printf("failed %s: %v", name, err)
			results[name] = map[string]string{"error": err.Error()}
			return
		}
		log.Printf("processed %s", name)
		results[name] = values
	})

	if err := WriteResults(results, outputDir); err != nil {
		return results, err
	}
	return results, nil
}

// runPool fans filenames out to workers. initial is processed first; extraCh,
// when non-nil, keeps feeding the pool (watch mode) and the call blocks until
// it closes.
func (e *Extractor) runPool(dir string, initial []string, workers int, extraCh <-chan string, handle func(name string, values map[string]string, err error)) {
	fileCh := make(chan string, 1024)
	var wg sync.WaitGroup
	for i := 0; i < EffectiveWorkers(workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				values, err := e.ExtractFromImage(filepath.Join(dir, name))
				handle(name, values, err)
			}
		}()
	}
	for _, name := range initial {
		fileCh <- name
	}
	if extraCh != nil {
		for name := range extraCh {
			fileCh <- name
		}
	}
	close(fileCh)
	wg.Wait()
}
