package main

import (
	"flag"
	"log"

	"golfocr/pkg/ocr"

	"github.com/gin-gonic/gin"
)

// runServe starts the extraction API. Requires DB_DSN; uploads are extracted
// with the same region configuration the CLI uses and persisted per request.
func runServe(args []string) {
	fs := flag.NewFlagSet("golfocr serve", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "Region configuration file")
	addr := fs.String("addr", ":8081", "Listen address")
	fs.BoolVar(&ocr.Verbose, "verbose", false, "Verbose output")
	_ = fs.Parse(args)

	cfg, err := ocr.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	extractor = ocr.NewExtractor(cfg, ocr.NewTesseractDetector())

	initDB()

	r := gin.Default()
	setupRoutes(r)
	if err := r.Run(*addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
