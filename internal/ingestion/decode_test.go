package ingestion

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_EmptyData(t *testing.T) {
	assert.Equal(t, "", ExtractText("resume.pdf", "application/pdf", nil))
	assert.Equal(t, "", ExtractText("resume.txt", "", []byte{}))
}

func TestExtractText_PlainTextFallback(t *testing.T) {
	data := []byte("John Smith\njohn@example.com")

	assert.Equal(t, "John Smith\njohn@example.com", ExtractText("resume.txt", "text/plain", data))

	// Unknown extensions and content types are treated as plain text.
	assert.Equal(t, "John Smith\njohn@example.com", ExtractText("resume.bin", "application/octet-stream", data))
}

func TestExtractText_CorruptPDFYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractText("resume.pdf", "application/pdf", []byte("not a pdf")))

	// Content type alone routes to the PDF decoder.
	assert.Equal(t, "", ExtractText("resume", "application/pdf", []byte("not a pdf")))
}

func TestExtractText_Docx(t *testing.T) {
	docXML := `<?xml version="1.0"?><w:document><w:body>` +
		`<w:p><w:r><w:t>John Smith</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Senior</w:t><w:tab/><w:t>Developer</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	data := buildDocx(t, map[string]string{"word/document.xml": docXML})
	text := ExtractText("resume.docx", "", data)

	assert.Contains(t, text, "John Smith")
	assert.Contains(t, text, "Senior")
	assert.Contains(t, text, "Developer")
}

func TestExtractText_DocxWithoutDocumentXML(t *testing.T) {
	data := buildDocx(t, map[string]string{"word/other.xml": "<w:p>x</w:p>"})
	assert.Equal(t, "", ExtractText("resume.docx", "", data))
}

func TestExtractText_CorruptDocxYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractText("resume.docx", "", []byte("not a zip archive")))
}

func buildDocx(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
