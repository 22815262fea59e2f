// Command extract_text prints what the extractor reads from local resume
// files, to debug extraction without calling the analysis service.
//
//	go run ./scripts/extract_text.go resume.pdf cv.docx
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"alfredoptarigan/talent-analyzer/internal/models"
	"alfredoptarigan/talent-analyzer/internal/services"
)

func main() {
	showText := flag.Bool("text", false, "print the full extracted text")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("usage: extract_text [-text] FILE...")
	}

	extractor := services.NewTextExtractor()

	successCount := 0
	failCount := 0

	for _, path := range flag.Args() {
		log.Printf("\n📄 Processing: %s", path)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("   ⚠️  File not found, skipping...")
			failCount++
			continue
		}

		format, err := services.FormatFromFilename(path)
		if err != nil {
			log.Printf("   ❌ %v", err)
			failCount++
			continue
		}

		content, err := extractor.ExtractWithMetaData(path, format)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		unit := "pages"
		if content.Format != models.FormatPDF {
			unit = "paragraphs"
		}
		log.Printf("   ✅ Extracted %d %s, %d characters", content.Units, unit, len(content.Text))

		if *showText {
			fmt.Println(content.Text)
		}
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Extraction Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
