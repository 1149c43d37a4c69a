package ingest

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	extText = ".txt"
	extDocx = ".docx"
)

// ListDocuments returns the ingestable files in dir, sorted by name.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case extText, extDocx:
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// LoadDocument reads path as plain text.
func LoadDocument(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case extText:
		return readText(path)
	case extDocx:
		return readDocx(path)
	default:
		return "", fmt.Errorf("unsupported file type %s", ext)
	}
}

// readText reads a UTF-8 text file, dropping invalid bytes.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// readDocx extracts paragraph text from a Word document. A .docx file is a
// zip archive with the paragraph text in word/document.xml.
func readDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		reader, err := file.Open()
		if err != nil {
			return "", err
		}
		defer reader.Close()
		return extractDocxText(reader)
	}
	return "", fmt.Errorf("no word/document.xml in %s", filepath.Base(path))
}

// extractDocxText walks the document XML and joins paragraph (w:p) text
// runs (w:t) with newlines, the same shape the plain text loader produces.
func extractDocxText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inParagraph && inText {
				current.Write(t)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}
