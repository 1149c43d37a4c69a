package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"guidegen/core/config"
	"guidegen/feature/ingest"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug_chunks <document.txt|document.docx>")
	}
	path := os.Args[1]

	// Load config
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	text, err := ingest.LoadDocument(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %s: %d runes\n", path, utf8.RuneCountInString(text))

	// Test 1: pack chunker
	fmt.Println("\n=== TEST 1: Pack Chunker ===")
	pack := ingest.PackChunks(text, cfg.Ingest.MaxChars)
	report(pack, cfg.Ingest.MaxChars)

	// Test 2: paragraph chunker
	fmt.Println("\n=== TEST 2: Paragraph Chunker ===")
	para := ingest.ParagraphChunks(text, cfg.Ingest.ParagraphMaxChars, cfg.Ingest.ParagraphOverlap)
	report(para, cfg.Ingest.ParagraphMaxChars)

	// Save counts for comparing runs while tuning chunker settings
	output := map[string]interface{}{
		"source":           path,
		"runes":            utf8.RuneCountInString(text),
		"pack_chunks":      len(pack),
		"paragraph_chunks": len(para),
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_chunks.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_chunks.json for details.")
}

func report(chunks []string, budget int) {
	if len(chunks) == 0 {
		fmt.Println("No chunks produced")
		return
	}

	min, max, total, over := -1, 0, 0, 0
	for _, c := range chunks {
		n := utf8.RuneCountInString(c)
		if min < 0 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
		if n > budget {
			over++
		}
		total += n
	}

	fmt.Printf("Chunks: %d (min %d, max %d, avg %d runes, budget %d)\n",
		len(chunks), min, max, total/len(chunks), budget)
	if over > 0 {
		fmt.Printf("%d chunks exceed the budget - single lines longer than the budget cannot be split\n", over)
	}
	fmt.Printf("First chunk:\n%s\n", preview(chunks[0]))
}

func preview(s string) string {
	const limit = 200
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
