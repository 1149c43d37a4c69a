package ingest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	assert.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	assert.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.TXT", "notes.docx", "image.png", "readme.md"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.txt"), 0755))

	files, err := ListDocuments(dir)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.TXT"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "notes.docx"),
	}, files)
}

func TestLoadDocument_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	// Invalid UTF-8 bytes are dropped rather than failing the file.
	assert.NoError(t, os.WriteFile(path, []byte("hello \xff\xfe world"), 0644))

	text, err := LoadDocument(path)
	assert.NoError(t, err)
	assert.Equal(t, "hello  world", text)
}

func TestLoadDocument_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manual.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
		<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
			<w:body>
				<w:p><w:r><w:t>Open the </w:t></w:r><w:r><w:t>front cover.</w:t></w:r></w:p>
				<w:p><w:r><w:t>Remove the cartridge.</w:t></w:r></w:p>
			</w:body>
		</w:document>`)

	text, err := LoadDocument(path)
	assert.NoError(t, err)
	assert.Equal(t, "Open the front cover.\nRemove the cartridge.", text)
}

func TestLoadDocument_DocxNotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	assert.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0644))

	_, err := LoadDocument(path)
	assert.Error(t, err)
}

func TestLoadDocument_DocxWithoutDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/other.xml")
	assert.NoError(t, err)
	_, err = f.Write([]byte("<x/>"))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	_, err = LoadDocument(path)
	assert.ErrorContains(t, err, "no word/document.xml")
}

func TestLoadDocument_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	assert.NoError(t, os.WriteFile(path, []byte("%PDF"), 0644))

	_, err := LoadDocument(path)
	assert.ErrorContains(t, err, "unsupported file type .pdf")
}
