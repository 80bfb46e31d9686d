package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golfocr/pkg/ocr"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	// Auto-load ./.env if present (no external dependency) before reading vars
	loadDotEnv()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			// Run AutoMigrate and admin seeding then exit. Useful for CI or manual DB setup.
			initDB()
			fmt.Println("migration and seeding completed")
			return
		case "serve":
			runServe(os.Args[2:])
			return
		}
	}
	runBatch(os.Args[1:])
}

// runBatch is the CLI surface: process a directory (default), a single image,
// or keep watching a directory for new screenshots.
func runBatch(args []string) {
	fs := flag.NewFlagSet("golfocr", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "Region configuration file")
	inputDir := fs.String("input-dir", "photos", "Input directory containing images")
	outputDir := fs.String("output-dir", "output", "Output directory for results")
	singleImage := fs.String("single-image", "", "Process single image instead of directory")
	watch := fs.Bool("watch", false, "Keep watching the input directory for new images")
	workers := fs.Int("workers", 0, "Worker pool size (default NumCPU)")
	fs.BoolVar(&ocr.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&ocr.Verbose, "v", false, "Verbose output (shorthand)")
	_ = fs.Parse(args)

	cfg, err := ocr.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	ex := ocr.NewExtractor(cfg, ocr.NewTesseractDetector())

	if *singleImage != "" {
		values, err := ex.ExtractFromImage(*singleImage)
		if err != nil {
			log.Fatalf("error processing %s: %v", *singleImage, err)
		}
		fmt.Printf("\n=== Results for %s ===\n", *singleImage)
		for _, name := range cfg.MetricNames() {
			fmt.Printf("%s: %s\n", name, values[name])
		}
		return
	}

	results, err := ex.ProcessDirectory(*inputDir, *outputDir, *workers)
	if err != nil {
		log.Fatalf("batch failed: %v", err)
	}
	printSummary(results)

	if *watch {
		err := ex.WatchDirectory(*inputDir, *workers, func(name string, values map[string]string, err error) {
			if err != nil {
				log.Printf("failed %s: %v", name, err)
				return
			}
			log.Printf("processed %s: %v", name, values)
		})
		if err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	}
}

func printSummary(results ocr.BatchResult) {
	total, successful := results.Summary()
	fmt.Printf("\n=== Summary ===\n")
	fmt.Printf("Total images: %d\n", total)
	fmt.Printf("Successful: %d\n", successful)
	fmt.Printf("Failed: %d\n", total-successful)
	if total > 0 {
		fmt.Printf("Success rate: %.1f%%\n", float64(successful)/float64(total)*100)
	}
}

// loadDotEnv loads key=value pairs from a local .env file into the environment
// without overwriting variables that are already set. Lines starting with # are ignored.
func loadDotEnv() {
	path := ".env"
	if _, err := os.Stat(path); err != nil {
		return // no .env file
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// split on first '='
		if eq := strings.IndexByte(line, '='); eq > 0 {
			key := strings.TrimSpace(line[:eq])
			val := strings.TrimSpace(line[eq+1:])
			if _, exists := os.LookupEnv(key); !exists {
				_ = os.Setenv(key, val)
			}
		}
	}
}
