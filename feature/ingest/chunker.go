package ingest

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Chunker names accepted by the configuration and the ingest command.
const (
	ChunkerPack      = "pack"
	ChunkerParagraph = "paragraph"
)

// IsValidChunker reports whether name is a known chunker. Empty selects the
// default pack chunker.
func IsValidChunker(name string) bool {
	return name == "" || name == ChunkerPack || name == ChunkerParagraph
}

// PackChunks strips every line and repacks them into blocks of at most
// maxChars characters. Blank lines survive as newline separators inside a
// block, so paragraph boundaries stay visible to the model. Blocks that end
// up empty are dropped.
func PackChunks(text string, maxChars int) []string {
	var blocks []string
	var buf []string
	size := 0

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			line = "\n"
		}
		if size+utf8.RuneCountInString(line)+1 > maxChars && len(buf) > 0 {
			blocks = append(blocks, strings.TrimSpace(strings.Join(buf, " ")))
			buf, size = nil, 0
		}
		buf = append(buf, line)
		size += utf8.RuneCountInString(line) + 1
	}
	if len(buf) > 0 {
		blocks = append(blocks, strings.TrimSpace(strings.Join(buf, " ")))
	}

	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) != "" {
			out = append(out, block)
		}
	}
	return out
}

var paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)

// ParagraphChunks splits text on blank lines and merges paragraphs up to
// maxChars characters per chunk. When a chunk overflows, the last overlap
// characters are carried into the next chunk so context spanning a boundary
// is not lost.
func ParagraphChunks(text string, maxChars, overlap int) []string {
	var parts []string
	current := ""

	for _, para := range paragraphSplitRe.Split(text, -1) {
		if utf8.RuneCountInString(current)+utf8.RuneCountInString(para)+1 <= maxChars {
			current = strings.TrimSpace(current + "\n" + para)
			continue
		}

		if current != "" {
			parts = append(parts, current)
		}
		current = strings.TrimSpace(runeTail(current, overlap) + "\n" + para)
	}
	if current != "" {
		parts = append(parts, current)
	}

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// runeTail returns the last n runes of s.
func runeTail(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
